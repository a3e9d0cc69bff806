package playback

import (
	"math"

	"github.com/betaview/betaview-backend/internal/models"
)

// Synchronizer maps a continuous playback clock onto the discrete frame
// array of a PoseStream. Resolution is direct indexing, never a search:
// index = clamp(floor(t*fps), 0, frameCount-1). The mapping is approximate
// with a bounded error of one frame duration.
type Synchronizer struct {
	stream *models.PoseStream
}

// NewSynchronizer creates a synchronizer over an immutable stream
func NewSynchronizer(stream *models.PoseStream) *Synchronizer {
	return &Synchronizer{stream: stream}
}

// Resolve returns the frame displayed at playback time t in seconds.
// Negative times clamp to the first frame, times past the end clamp to the
// last frame. ok is false only for an empty stream.
func (s *Synchronizer) Resolve(t float64) (*models.PoseFrame, bool) {
	n := s.stream.FrameCount()
	if n == 0 {
		return nil, false
	}

	// Clamp before converting: an out-of-range float to int conversion is
	// implementation-defined and would wrap huge times onto the first frame
	idx := math.Floor(t * s.stream.FPS)
	if idx >= float64(n) {
		idx = float64(n - 1)
	}
	if idx < 0 || math.IsNaN(idx) {
		idx = 0
	}
	return &s.stream.Frames[int(idx)], true
}

// SyncState tracks the last resolved frame id of one viewing session, used
// only to detect backward jumps. Session-scoped; never shared.
type SyncState struct {
	lastFrameID int
	seen        bool
}

// Observe records a resolved frame id and reports whether playback jumped
// backwards since the previous observation
func (st *SyncState) Observe(frameID int) bool {
	backward := st.seen && frameID < st.lastFrameID
	st.lastFrameID = frameID
	st.seen = true
	return backward
}

// Reset forgets the last observation
func (st *SyncState) Reset() {
	st.lastFrameID = 0
	st.seen = false
}
