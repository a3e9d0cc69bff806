package overlay

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

// Renderer turns a resolved pose frame into the draw-command list for the
// currently enabled overlay kinds. The command list always begins with a
// clear of the whole surface; kinds are drawn in fixed order and are
// independent of each other's output. Per-tick cost is O(1) plus the
// bounded hip history.
type Renderer struct {
	transform geom.Transform
}

// NewRenderer creates a renderer mapping the stream's native capture size
// onto a display surface. Scale factors are independent per axis; an aspect
// ratio mismatch is rendered stretched rather than corrected.
func NewRenderer(displayW, displayH float64, stream *models.PoseStream) *Renderer {
	return &Renderer{
		transform: geom.NewTransform(displayW, displayH, float64(stream.Width), float64(stream.Height)),
	}
}

// Transform returns the pose-to-display coordinate transform
func (r *Renderer) Transform() geom.Transform {
	return r.transform
}

// Render produces the draw commands for one playback tick. A nil frame
// (empty stream) clears the surface and draws nothing. Only the hip path
// kind mutates the history.
func (r *Renderer) Render(frame *models.PoseFrame, cfg models.OverlayConfig, hist *HipHistory) []Command {
	cmds := []Command{clear()}
	if frame == nil {
		return cmds
	}
	for _, kind := range EnabledKinds(cfg) {
		cmds = append(cmds, kind.draw(frame, r.transform, hist)...)
	}
	return cmds
}
