package geom

import "github.com/golang/geo/r2"

// Transform maps pose-space coordinates onto a display surface using
// independent per-axis scale factors. Aspect ratio mismatches between the
// capture size and the display size are not corrected.
type Transform struct {
	ScaleX float64
	ScaleY float64
}

// NewTransform creates a transform from a display size and the native
// capture size of the pose data. Non-positive capture dimensions fall back
// to identity scaling on that axis.
func NewTransform(displayW, displayH, poseW, poseH float64) Transform {
	t := Transform{ScaleX: 1, ScaleY: 1}
	if poseW > 0 {
		t.ScaleX = displayW / poseW
	}
	if poseH > 0 {
		t.ScaleY = displayH / poseH
	}
	return t
}

// Apply converts a pose-space point to display-space
func (t Transform) Apply(p r2.Point) r2.Point {
	return r2.Point{X: p.X * t.ScaleX, Y: p.Y * t.ScaleY}
}

// Invert converts a display-space point back to pose-space
func (t Transform) Invert(p r2.Point) r2.Point {
	out := p
	if t.ScaleX != 0 {
		out.X = p.X / t.ScaleX
	}
	if t.ScaleY != 0 {
		out.Y = p.Y / t.ScaleY
	}
	return out
}
