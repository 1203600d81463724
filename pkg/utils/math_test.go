package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
	assert.Equal(t, 20.0, Lerp(10, 20, 1))
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
}
