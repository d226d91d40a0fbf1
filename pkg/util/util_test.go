package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 4.91, RoundFloat(4.9051, 2))
	assert.Equal(t, 0.5, RoundFloat(0.5004, 3))
	assert.Equal(t, 1.0, RoundFloat(0.9999, 2))
	assert.Equal(t, 0.0, RoundFloat(0, 3))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 1.5, Min(1.5, 2.5))
}

func TestWrapErrorfPreservesCode(t *testing.T) {
	orig := errors.New("disk gone")
	err := WrapErrorf(orig, ErrInternalServerError, "loading dataset")

	var wrapped *Error
	require.True(t, errors.As(err, &wrapped))
	assert.Equal(t, ErrInternalServerError, wrapped.Code())
	assert.ErrorIs(t, err, orig)
}

func TestStringToFloat64(t *testing.T) {
	val, err := StringToFloat64("48.85")
	require.NoError(t, err)
	assert.Equal(t, 48.85, val)

	_, err = StringToFloat64("not a number")
	assert.Error(t, err)
}
