package cleaning

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cause := fs.ErrNotExist

	openErr := NewOpenError("/tmp/input.csv", cause)
	assert.True(t, IsOpenError(openErr))
	assert.False(t, IsMapError(openErr))
	assert.ErrorIs(t, openErr, fs.ErrNotExist)
	assert.Contains(t, openErr.Error(), "open")
	assert.Contains(t, openErr.Error(), "/tmp/input.csv")

	mapErr := NewMapError("/tmp/input.csv", cause)
	assert.True(t, IsMapError(mapErr))
	assert.False(t, IsOpenError(mapErr))
}

func TestErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("engine run: %w", NewMapError("x.csv", errors.New("mmap failed")))
	assert.True(t, IsMapError(wrapped))
	assert.False(t, IsOpenError(wrapped))
}

func TestErrorPredicatesOnForeignError(t *testing.T) {
	assert.False(t, IsOpenError(errors.New("plain")))
	assert.False(t, IsMapError(nil))
}
