package overlay

import "github.com/golang/geo/r2"

// HistoryCapacity is the maximum number of hip positions retained for the
// hip path trail, roughly three seconds at 30 fps
const HistoryCapacity = 90

// HipHistory is the bounded trailing buffer of pose-space hip positions
// backing the hip path overlay. Oldest entries are evicted first. It is
// owned by a single viewing session and reset whenever playback jumps
// backwards or the user seeks.
type HipHistory struct {
	points []r2.Point
}

// NewHipHistory creates an empty hip history
func NewHipHistory() *HipHistory {
	return &HipHistory{points: make([]r2.Point, 0, HistoryCapacity)}
}

// Append adds a hip position, evicting the oldest entry when the buffer
// is at capacity
func (h *HipHistory) Append(p r2.Point) {
	if len(h.points) >= HistoryCapacity {
		copy(h.points, h.points[1:])
		h.points = h.points[:len(h.points)-1]
	}
	h.points = append(h.points, p)
}

// Len returns the number of buffered positions
func (h *HipHistory) Len() int {
	return len(h.points)
}

// Points returns the buffered positions oldest-first. The returned slice
// aliases the buffer and is only valid until the next Append or Reset.
func (h *HipHistory) Points() []r2.Point {
	return h.points
}

// Reset discards all buffered positions
func (h *HipHistory) Reset() {
	h.points = h.points[:0]
}
