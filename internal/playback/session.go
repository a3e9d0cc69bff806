package playback

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/overlay"
)

// DrawSink receives the ephemeral draw-command lists produced for each
// playback tick. Commands are never persisted.
type DrawSink interface {
	Submit(cmds []overlay.Command)
}

// Session is one viewing session over an immutable PoseStream. It owns all
// session-scoped mutable state: the sync state, the hip history and the
// overlay toggles. Sessions are driven by a TickSource and render at most
// one pass per notification; a notification arriving while a render is
// still in flight is dropped. After Close no draw commands are submitted.
type Session struct {
	id       string
	sync     *Synchronizer
	renderer *overlay.Renderer
	sink     DrawSink

	inFlight atomic.Bool

	mu          sync.Mutex
	state       SyncState
	hist        *overlay.HipHistory
	cfg         models.OverlayConfig
	closed      bool
	unsubscribe func()
}

// NewSession creates a viewing session rendering a stream onto a display
// surface of the given size
func NewSession(stream *models.PoseStream, displayW, displayH float64, cfg models.OverlayConfig, sink DrawSink) *Session {
	return &Session{
		id:       uuid.NewString(),
		sync:     NewSynchronizer(stream),
		renderer: overlay.NewRenderer(displayW, displayH, stream),
		sink:     sink,
		hist:     overlay.NewHipHistory(),
		cfg:      cfg,
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// SetConfig swaps the overlay toggles. Pure configuration: nothing is
// recomputed and the hip history is left untouched.
func (s *Session) SetConfig(cfg models.OverlayConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Attach subscribes the session to a tick source. The subscription is
// released on Close.
func (s *Session) Attach(src TickSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.unsubscribe != nil {
		return
	}
	s.unsubscribe = src.Subscribe(s)
}

// OnTick handles an ordinary time-advance notification. A backward jump in
// the resolved frame id is treated as a seek and resets the hip history.
func (s *Session) OnTick(t float64) {
	s.render(t, false)
}

// OnSeek handles an explicit seek notification. The hip history and sync
// state always reset, regardless of seek direction, so scrubbing forward
// and back within one gesture leaves consistent state.
func (s *Session) OnSeek(t float64) {
	s.render(t, true)
}

// render performs one synchronize-and-draw pass. Drop-latest: if a pass is
// already in flight the notification is discarded, keeping at most one
// render in flight per session.
func (s *Session) render(t float64, seek bool) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if seek {
		s.state.Reset()
		s.hist.Reset()
	}

	frame, ok := s.sync.Resolve(t)
	if ok && s.state.Observe(frame.FrameID) {
		// Backward jump without an explicit seek notification
		s.hist.Reset()
	}

	var cmds []overlay.Command
	if ok {
		cmds = s.renderer.Render(frame, s.cfg, s.hist)
	} else {
		cmds = s.renderer.Render(nil, s.cfg, nil)
	}
	s.sink.Submit(cmds)
}

// Close tears the session down: the tick subscription is released and all
// session state discarded. Idempotent; no draw commands are submitted after
// Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.hist.Reset()
	s.state.Reset()
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
