package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	t.Run("new error carries its code", func(t *testing.T) {
		err := New(CodeValidation, "tenantId is required")
		assert.True(t, HasCode(err, CodeValidation))
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, "tenantId is required", Message(err))
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeNotFound, "missing"))
		code, ok := CodeOf(err)
		assert.True(t, ok)
		assert.Equal(t, CodeNotFound, code)
	})

	t.Run("wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(cause, CodeInternal, "failed to query cases")
		assert.ErrorIs(t, err, cause)
		assert.True(t, Is(err, CodeInternal))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("plain errors are uncoded", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, IsCoded(err))
		assert.Equal(t, "boom", Message(err))
	})
}
