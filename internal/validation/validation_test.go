package validation_test

import (
	"testing"

	"tokoadmin/internal/validation"

	"github.com/stretchr/testify/assert"
)

type colorInput struct {
	Name       string `json:"name" label:"Name" validate:"required,notblank"`
	ColorValue string `json:"colorValue" label:"Color value" validate:"required,min=4,hexprefix"`
}

type imagesInput struct {
	Images []string `json:"images" label:"Images" validate:"min=1"`
}

func TestFirstReportsFieldsInDeclarationOrder(t *testing.T) {
	v := validation.New()

	err := v.Struct(colorInput{})
	assert.Error(t, err)
	assert.Equal(t, "Name is required", validation.First(err))

	err = v.Struct(colorInput{Name: "Red"})
	assert.Equal(t, "Color value is required", validation.First(err))
}

func TestHexPrefix(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(colorInput{Name: "Red", ColorValue: "#FF0000"}))

	err := v.Struct(colorInput{Name: "Red", ColorValue: "FF0000"})
	assert.Error(t, err)
	assert.Equal(t, "Color value must start with # (valid hex code)", validation.First(err))

	err = v.Struct(colorInput{Name: "Red", ColorValue: "#FF"})
	assert.Equal(t, "Color value must contain at least 4 character(s)", validation.First(err))
}

func TestNotBlank(t *testing.T) {
	v := validation.New()

	for _, name := range []string{" ", "\t", "  \n "} {
		err := v.Struct(colorInput{Name: name, ColorValue: "#FF0000"})
		assert.Error(t, err)
		assert.Equal(t, "Name is required", validation.First(err))
	}

	assert.NoError(t, v.Struct(colorInput{Name: " Red ", ColorValue: "#FF0000"}))
}

func TestFieldsKeyedByStructField(t *testing.T) {
	v := validation.New()

	fields := validation.Fields(v.Struct(colorInput{ColorValue: "red"}))
	assert.Equal(t, "Name is required", fields["Name"])
	assert.Equal(t, "Color value must contain at least 4 character(s)", fields["ColorValue"])

	fields = validation.Fields(v.Struct(imagesInput{}))
	assert.Equal(t, "Images must contain at least 1 item(s)", fields["Images"])
}

func TestFirstWithoutValidationErrors(t *testing.T) {
	assert.Equal(t, "Invalid request body", validation.First(assert.AnError))
	assert.Empty(t, validation.Fields(nil))
}
