package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxErrorAs(t *testing.T) {
	var err error = NewSyntaxError("unexpected EOF")

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "unexpected EOF", se.Cause)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestSemanticErrorAs(t *testing.T) {
	var err error = NewSemanticError("unknown primitive operator: wat")

	var se *SemanticError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, se.Cause, "wat")
}

func TestToolchainErrorWrapsCause(t *testing.T) {
	underlying := errors.New("exit status 1")
	wrapped := WrapToolchainError("gcc failed", underlying)

	var te *ToolchainError
	require.True(t, errors.As(error(wrapped), &te))
	assert.ErrorIs(t, wrapped, underlying)
}
