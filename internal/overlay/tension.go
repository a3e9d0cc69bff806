package overlay

import (
	"math"

	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

// TensionClass is the three-way body tension bucket
type TensionClass string

// Tension classes. Boundaries are inclusive downwards: exactly 0.7 is
// engaged, exactly 0.4 is moderate.
const (
	TensionEngaged  TensionClass = "engaged"
	TensionModerate TensionClass = "moderate"
	TensionSagging  TensionClass = "sagging"
)

const tensionLineWidth = 4.0

var tensionColors = map[TensionClass]Color{
	TensionEngaged:  {R: 0, G: 200, B: 80, A: 1},
	TensionModerate: {R: 255, G: 165, B: 0, A: 1},
	TensionSagging:  {R: 220, G: 40, B: 40, A: 1},
}

// ClassifyTension buckets a tension value
func ClassifyTension(tension float64) TensionClass {
	switch {
	case tension >= 0.7:
		return TensionEngaged
	case tension >= 0.4:
		return TensionModerate
	default:
		return TensionSagging
	}
}

// FrameTension computes the per-frame body tension value from the shoulder
// and hip midpoints in pose space. Returns ok=false when either midpoint
// misses the visibility threshold or the torso length is degenerate.
func FrameTension(f *models.PoseFrame) (float64, bool) {
	shoulder, sok := f.VisibleKeypoint(models.KeypointMidShoulder)
	hip, hok := f.VisibleKeypoint(models.KeypointMidHip)
	if !sok || !hok {
		return 0, false
	}

	torso := math.Abs(shoulder.Y - hip.Y)
	if torso < 1e-6 {
		// Horizontal body; lateral offset is undefined, treat as no data
		return 0, false
	}

	lateral := math.Abs(shoulder.X-hip.X) / torso
	tension := 1 - lateral
	if tension < 0 {
		tension = 0
	}
	return tension, true
}

// drawBodyTension draws one shoulder-midpoint to hip-midpoint line,
// color-coded by tension class
func drawBodyTension(f *models.PoseFrame, t geom.Transform) []Command {
	tension, ok := FrameTension(f)
	if !ok {
		return nil
	}

	shoulder, _ := f.VisibleKeypoint(models.KeypointMidShoulder)
	hip, _ := f.VisibleKeypoint(models.KeypointMidHip)
	a := t.Apply(shoulder.Point())
	b := t.Apply(hip.Point())

	color := tensionColors[ClassifyTension(tension)]
	return []Command{line(Point{a.X, a.Y}, Point{b.X, b.Y}, color, tensionLineWidth)}
}
