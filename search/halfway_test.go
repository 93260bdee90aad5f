package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rcsp/search"
)

func TestHalfwayTightensFromBothSides(t *testing.T) {
	h := search.NewHalfway(0, 10)
	h.UpdateForward(4)
	assert.Equal(t, 4.0, h.Min)
	h.UpdateBackward(6)
	assert.Equal(t, 6.0, h.Max)
	assert.Equal(t, 4.0, h.HF())
}

func TestHalfwayViolations(t *testing.T) {
	h := search.NewHalfway(2, 8)
	assert.False(t, h.ViolatedForward(8))
	assert.True(t, h.ViolatedForward(9))
	assert.False(t, h.ViolatedBackward(2))
	assert.True(t, h.ViolatedBackward(1))
}
