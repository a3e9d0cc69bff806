package overlay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHipHistoryEvictsOldest(t *testing.T) {
	h := NewHipHistory()

	for i := 0; i <= HistoryCapacity; i++ {
		h.Append(r2.Point{X: float64(i), Y: 0})
	}

	// One past capacity: the oldest entry is gone
	require.Equal(t, HistoryCapacity, h.Len())
	points := h.Points()
	assert.Equal(t, 1.0, points[0].X)
	assert.Equal(t, float64(HistoryCapacity), points[len(points)-1].X)
}

func TestHipHistoryReset(t *testing.T) {
	h := NewHipHistory()
	h.Append(r2.Point{X: 1, Y: 2})
	h.Append(r2.Point{X: 3, Y: 4})
	require.Equal(t, 2, h.Len())

	h.Reset()
	assert.Equal(t, 0, h.Len())

	// Usable again after reset
	h.Append(r2.Point{X: 5, Y: 6})
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 5.0, h.Points()[0].X)
}
