package overlay

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

const trailWidth = 3.0

var trailColor = Color{R: 255, G: 255, B: 0, A: 0.8}

// drawHipPath appends the current mid_hip position to the session history
// and renders the buffered trail as one connected polyline. Positions are
// buffered in pose space and scaled individually at draw time, so a display
// resize mid-session does not distort earlier trail points. At least two
// buffered positions are required before anything is drawn.
func drawHipPath(f *models.PoseFrame, t geom.Transform, hist *HipHistory) []Command {
	if hist == nil {
		return nil
	}

	if kp, ok := f.VisibleKeypoint(models.KeypointMidHip); ok {
		hist.Append(kp.Point())
	}

	if hist.Len() < 2 {
		return nil
	}

	points := make([]Point, hist.Len())
	for i, p := range hist.Points() {
		scaled := t.Apply(p)
		points[i] = Point{scaled.X, scaled.Y}
	}
	return []Command{polyline(points, trailColor, trailWidth)}
}
