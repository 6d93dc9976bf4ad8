package validator

import (
	"errors"
	"testing"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `validate:"required"`
	Limit int    `validate:"max=100"`
}

func TestParseError(t *testing.T) {
	v := validatorlib.New()
	err := v.Struct(sample{Limit: 500})
	require.Error(t, err)

	parsed := ParseError(err)
	assert.Contains(t, parsed["Title"], "required")
	assert.Contains(t, parsed["Limit"], "max")
}

func TestParseErrorPlainError(t *testing.T) {
	parsed := ParseError(errors.New("boom"))
	assert.Equal(t, "boom", parsed["error"])
}

func TestMessageTakesFirstViolation(t *testing.T) {
	v := validatorlib.New()
	err := v.Struct(sample{})

	msg := Message(err)
	assert.Contains(t, msg, "Title")
	assert.Contains(t, msg, "required")
}

func TestMessageNil(t *testing.T) {
	assert.Empty(t, Message(nil))
}
