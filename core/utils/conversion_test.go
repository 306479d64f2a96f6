package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	// JSON numbers decode as float64
	assert.Equal(t, 3, ToInt(float64(3)))
	assert.Equal(t, 3, ToInt("3"))
	assert.Equal(t, 3, ToInt(" 3 "))
	assert.Equal(t, 3, ToInt(3))
	assert.Equal(t, 0, ToInt(nil))
	assert.Equal(t, 0, ToInt("not a number"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString("  abc  "))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "true", ToString(true))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("True"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(float64(1)))
	assert.False(t, ToBool(false))
	assert.False(t, ToBool("false"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool(nil))
}
