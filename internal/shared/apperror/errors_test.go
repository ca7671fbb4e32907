package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesKind(t *testing.T) {
	err := New(ErrNotFound, "book not found")

	assert.EqualError(t, err, "book not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, ErrNotFound, err.Kind())
}

func TestWrappedErrorStillMatches(t *testing.T) {
	base := New(ErrConflict, "version conflict")
	wrapped := fmt.Errorf("update book: %w", base)

	assert.True(t, errors.Is(wrapped, ErrConflict))
	assert.True(t, errors.Is(wrapped, base))
}
