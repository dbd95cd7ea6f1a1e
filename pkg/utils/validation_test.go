package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Kind  string `validate:"omitempty,oneof=flat percentage"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&sampleInput{Name: "Asha", Email: "asha@example.com"})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsErrors(t *testing.T) {
	errs := ValidateStruct(&sampleInput{Email: "nope", Kind: "weird"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Kind")

	msg := FormatValidationErrors(errs)
	assert.Contains(t, msg, "Email")
}
