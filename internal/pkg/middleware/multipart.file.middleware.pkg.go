package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pvlov/gin-multipart-test/internal/common/enum"
	_type "github.com/pvlov/gin-multipart-test/internal/common/type"
	"github.com/pvlov/gin-multipart-test/internal/pkg/helper"
)

const DefaultMaxMemory = 32 << 20

type FieldOpts struct {
	Name string
	Type enum.FileTypeEnum
	Max  int
	Min  int
}

type MultipartOpts struct {
	Files []FieldOpts
	// JSON names form fields that must hold exactly one JSON document.
	JSON      []string
	MaxMemory int64
}

type formError struct {
	code    int
	message string
	err     error
}

func (e *formError) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

// MultipartFormMiddleware parses the request as multipart/form-data and
// stores the configured file fields under "bufferedFiles" and the JSON fields
// under "jsonFields".
func MultipartFormMiddleware(opts MultipartOpts) gin.HandlerFunc {
	if opts.MaxMemory <= 0 {
		opts.MaxMemory = DefaultMaxMemory
	}

	return func(c *gin.Context) {
		send := Send(c)

		if c.ContentType() != enum.MultipartForm.ToString() {
			send(helper.ParseResponse(&_type.Response{
				Code:    http.StatusUnsupportedMediaType,
				Message: "Expected " + enum.MultipartForm.ToString(),
			}))
			return
		}

		if err := c.Request.ParseMultipartForm(opts.MaxMemory); err != nil {
			send(helper.ParseResponse(&_type.Response{
				Code:    http.StatusBadRequest,
				Message: "Failed parsing multipart form",
				Error:   err,
			}))
			return
		}
		form := c.Request.MultipartForm

		bufferedFiles, err := bufferFiles(form, opts.Files)
		if err == nil {
			var jsonFields _type.JSONFields
			jsonFields, err = collectJSON(form, opts.JSON)
			if err == nil {
				c.Set("bufferedFiles", bufferedFiles)
				c.Set("jsonFields", jsonFields)
				c.Next()
				return
			}
		}

		var fe *formError
		if !errors.As(err, &fe) {
			fe = &formError{code: http.StatusInternalServerError, message: "Failed reading form", err: err}
		}
		send(helper.ParseResponse(&_type.Response{
			Code:    fe.code,
			Message: fe.message,
			Error:   fe.err,
		}))
	}
}

func bufferFiles(form *multipart.Form, fields []FieldOpts) (_type.BufferedFiles, error) {
	bufferedFiles := make(_type.BufferedFiles)

	for _, field := range fields {
		headers := form.File[field.Name]

		if len(headers) < field.Min {
			return nil, &formError{code: http.StatusBadRequest, message: fmt.Sprintf("Minimum %s is %d", field.Name, field.Min)}
		}
		if field.Max > 0 && len(headers) > field.Max {
			return nil, &formError{code: http.StatusBadRequest, message: fmt.Sprintf("Maximum %s is %d", field.Name, field.Max)}
		}

		for _, fileHeader := range headers {
			mimeType := fileHeader.Header.Get("Content-Type")
			if !field.Type.Accepts(mimeType) {
				return nil, &formError{
					code:    http.StatusUnsupportedMediaType,
					message: fmt.Sprintf("Please upload a valid %s file", field.Type.ToString()),
				}
			}

			buffer, err := readFile(fileHeader)
			if err != nil {
				return nil, &formError{code: http.StatusInternalServerError, message: "Failed reading file", err: err}
			}

			bufferedFiles[field.Name] = append(bufferedFiles[field.Name], _type.BufferedFile{
				FieldName:    field.Name,
				OriginalName: fileHeader.Filename,
				MimeType:     mimeType,
				Size:         len(buffer),
				Buffer:       buffer,
			})
		}
	}

	return bufferedFiles, nil
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// collectJSON reads JSON fields. Parts without a filename land in
// form.Value regardless of their Content-Type.
func collectJSON(form *multipart.Form, names []string) (_type.JSONFields, error) {
	fields := make(_type.JSONFields, len(names))

	for _, name := range names {
		values := form.Value[name]
		if len(values) != 1 {
			return nil, &formError{
				code:    http.StatusBadRequest,
				message: fmt.Sprintf("Expected exactly one %s field, got %d", name, len(values)),
			}
		}

		raw := []byte(strings.TrimSpace(values[0]))
		if !json.Valid(raw) {
			return nil, &formError{code: http.StatusBadRequest, message: fmt.Sprintf("Field %s is not valid json", name)}
		}
		fields[name] = raw
	}

	return fields, nil
}
