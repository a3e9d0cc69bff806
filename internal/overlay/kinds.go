package overlay

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

// Kind identifies one overlay variant. All kinds share the same draw
// contract over a frame, the coordinate transform and the session hip
// history; only KindHipPath mutates the history.
type Kind int

// Overlay kinds, in fixed draw order
const (
	KindSkeleton Kind = iota
	KindBodyTension
	KindFootStability
	KindElbowAngles
	KindHipPath
)

// String returns the kind name as used in the overlay configuration
func (k Kind) String() string {
	switch k {
	case KindSkeleton:
		return "skeleton"
	case KindBodyTension:
		return "bodyTension"
	case KindFootStability:
		return "footStability"
	case KindElbowAngles:
		return "elbowAngles"
	case KindHipPath:
		return "hipPath"
	}
	return "unknown"
}

// draw produces the kind's display-space commands for one frame. Kinds
// degrade gracefully: missing or low-visibility keypoints yield no commands
// and no error, without affecting other kinds.
func (k Kind) draw(f *models.PoseFrame, t geom.Transform, hist *HipHistory) []Command {
	switch k {
	case KindSkeleton:
		return drawSkeleton(f, t)
	case KindBodyTension:
		return drawBodyTension(f, t)
	case KindFootStability:
		return drawFootStability(f, t)
	case KindElbowAngles:
		return drawElbowAngles(f, t)
	case KindHipPath:
		return drawHipPath(f, t, hist)
	}
	return nil
}

// EnabledKinds maps an overlay configuration to the kinds to draw, in the
// fixed draw order. The flags are independent; no kind depends on another
// kind's output.
func EnabledKinds(cfg models.OverlayConfig) []Kind {
	var kinds []Kind
	if cfg.Skeleton {
		kinds = append(kinds, KindSkeleton)
	}
	if cfg.BodyTension {
		kinds = append(kinds, KindBodyTension)
	}
	if cfg.FootStability {
		kinds = append(kinds, KindFootStability)
	}
	if cfg.ElbowAngles {
		kinds = append(kinds, KindElbowAngles)
	}
	if cfg.HipPath {
		kinds = append(kinds, KindHipPath)
	}
	return kinds
}
