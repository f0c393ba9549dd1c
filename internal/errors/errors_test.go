package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfWalksWrappedChain(t *testing.T) {
	base := New(CodeDuplicateTheme, "duplicate theme id \"purple-light\"", nil)
	wrapped := fmt.Errorf("build registry: %w", base)

	assert.Equal(t, CodeDuplicateTheme, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeDuplicateTheme))
	assert.False(t, IsCode(wrapped, CodeIncompleteTheme))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("boom")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
}

func TestErrorMessageFallbacks(t *testing.T) {
	inner := errors.New("disk full")

	assert.Equal(t, "write state", New(CodeStoreFailed, "write state", inner).Error())
	assert.Equal(t, "disk full", New(CodeStoreFailed, "", inner).Error())
	assert.Equal(t, string(CodeStoreFailed), New(CodeStoreFailed, "", nil).Error())
	assert.ErrorIs(t, New(CodeStoreFailed, "write state", inner), inner)
}
