package dsgo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOutOfRangeError(t *testing.T) {
	err := NewIndexOutOfRange(5, 3)
	assert.EqualError(t, err, "index 5 out of range [0, 3)")

	var oor *IndexOutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 5, oor.Index)
	assert.Equal(t, 3, oor.Length)

	assert.True(t, errors.Is(err, &IndexOutOfRangeError{}))
	assert.False(t, errors.Is(err, &InvalidConfigurationError{}))
}

func TestInvalidConfigurationError(t *testing.T) {
	err := NewInvalidConfiguration("capacity", -1)
	assert.EqualError(t, err, "invalid configuration: capacity = -1")

	var cfg *InvalidConfigurationError
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, "capacity", cfg.Field)
	assert.Equal(t, -1, cfg.Value)

	assert.True(t, errors.Is(err, &InvalidConfigurationError{}))
}

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("during insert: %w", NewIndexOutOfRange(9, 4))

	var oor *IndexOutOfRangeError
	require.True(t, errors.As(wrapped, &oor))
	assert.Equal(t, 9, oor.Index)
}
