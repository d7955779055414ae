package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvlov/gin-multipart-test/internal/common/enum"
	types "github.com/pvlov/gin-multipart-test/internal/common/type"
)

type form struct {
	Name   string             `json:"name" validate:"required"`
	Public types.StringToBool `json:"public" validate:"stringToBool"`
	Kind   enum.FileTypeEnum  `json:"kind" validate:"enum"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Setup())
	require.NoError(t, Setup())

	assert.NoError(t, Validate(&form{Name: "a", Public: "TRUE", Kind: enum.VIDEO}))
	assert.NoError(t, Validate(&form{Name: "a", Kind: enum.FILE}))

	err := Validate(&form{Public: "nope", Kind: "audio"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form.name: name is required")
	assert.Contains(t, err.Error(), "form.public: public must be a boolean value")
	assert.Contains(t, err.Error(), "form.kind: kind must be one of the allowed enum values: enum.FileTypeEnum")
}
