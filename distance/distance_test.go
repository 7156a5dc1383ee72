package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredDiff(t *testing.T) {
	assert.Equal(t, 0.0, SquaredDiff(3.0, 3.0))
	assert.Equal(t, 4.0, SquaredDiff(1.0, 3.0))
	assert.Equal(t, 4.0, SquaredDiff(3.0, 1.0))
	assert.Equal(t, 6.25, SquaredDiff(float32(0.5), float32(3.0)))
}

func TestSquaredDiffUnsigned(t *testing.T) {
	// Widening to float64 must prevent unsigned wraparound.
	assert.Equal(t, 9.0, SquaredDiff(uint8(1), uint8(4)))
	assert.Equal(t, 9.0, SquaredDiff(uint8(4), uint8(1)))
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 2.0, AbsDiff(1.0, 3.0))
	assert.Equal(t, 2.0, AbsDiff(3.0, 1.0))
	assert.Equal(t, 3.0, AbsDiff(uint(1), uint(4)))
}
