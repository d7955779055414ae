package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pvlov/gin-multipart-test/internal/common/enum"
	types "github.com/pvlov/gin-multipart-test/internal/common/type"
)

var (
	val      *validator.Validate
	setupErr error
	once     sync.Once
)

var validationMessages = map[string]string{
	"required":     "is required",
	"min":          "must be greater than or equal to %s",
	"max":          "must be less than or equal to %s",
	"len":          "must have the exact length of %s",
	"oneof":        "must be one of the allowed values: %s",
	"alphanum":     "must contain only alphanumeric characters",
	"excludesall":  "must not contain any of the values: %s",
	"enum":         "must be one of the allowed enum values: %s",
	"stringToBool": "must be a boolean value",
}

// Setup builds the package validator and registers the custom tags on gin's
// binding engine as well. It is safe to call more than once.
func Setup() error {
	once.Do(func() {
		setupErr = setup()
	})
	return setupErr
}

func setup() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := RegisterValidations(v); err != nil {
		return fmt.Errorf("failed to register custom validations: %w", err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("failed to get validation engine")
	}
	if err := RegisterValidations(engine); err != nil {
		return fmt.Errorf("failed to register custom validations in Gin engine: %w", err)
	}

	val = v
	return nil
}

func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("enum", enum.ValidateEnum); err != nil {
		return fmt.Errorf("failed to register enum validation: %w", err)
	}
	if err := v.RegisterValidation("stringToBool", types.ValidateStringToBool); err != nil {
		return fmt.Errorf("failed to register stringToBool validation: %w", err)
	}
	return nil
}

func Validate(payload any) error {
	if err := Setup(); err != nil {
		return err
	}
	if err := val.Struct(payload); err != nil {
		return errors.New("Validation failed: " + parsingErrorValidate(err))
	}
	return nil
}

func parsingErrorValidate(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msg, ok := validationMessages[e.Tag()]
		if !ok {
			msg = "failed on the '" + e.Tag() + "' tag"
		}
		switch e.Tag() {
		case "enum":
			msg = fmt.Sprintf(msg, e.Type())
		default:
			if strings.Contains(msg, "%s") {
				msg = fmt.Sprintf(msg, e.Param())
			}
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s %s", e.Namespace(), e.Field(), msg))
	}
	return strings.Join(msgs, ", ")
}
