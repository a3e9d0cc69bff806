package overlay

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

const (
	elbowArcRadius = 30.0
	elbowArcWidth  = 2.0
)

var elbowArcColor = Color{R: 255, G: 0, B: 255, A: 1}

// ElbowArc computes the arc parameters for one arm: the headings of the
// elbow->shoulder and elbow->wrist rays and whether the sweep between them
// goes the long way around. The sweep from angle1 to angle2 is normalized
// into [0, 2π); a sweep greater than π selects the long arc.
func ElbowArc(shoulder, elbow, wrist r2.Point) (angle1, angle2 float64, longArc bool) {
	angle1 = geom.Heading(shoulder.Sub(elbow))
	angle2 = geom.Heading(wrist.Sub(elbow))
	longArc = geom.SweepDiff(angle1, angle2) > math.Pi
	return angle1, angle2, longArc
}

// drawElbowAngles draws a fixed-radius arc at each elbow whose shoulder,
// elbow and wrist keypoints all clear the visibility threshold. The arc
// sweeps from the shoulder ray to the wrist ray.
func drawElbowAngles(f *models.PoseFrame, t geom.Transform) []Command {
	var cmds []Command
	for _, arm := range arms {
		shoulder, sok := f.VisibleKeypoint(arm.shoulder)
		elbow, eok := f.VisibleKeypoint(arm.elbow)
		wrist, wok := f.VisibleKeypoint(arm.wrist)
		if !sok || !eok || !wok {
			continue
		}

		a1, a2, long := ElbowArc(shoulder.Point(), elbow.Point(), wrist.Point())
		center := t.Apply(elbow.Point())
		cmds = append(cmds, arc(Point{center.X, center.Y}, elbowArcRadius, a1, a2, long, elbowArcColor, elbowArcWidth))
	}
	return cmds
}

type armKeypoints struct {
	shoulder, elbow, wrist string
}

var arms = []armKeypoints{
	{models.KeypointLeftShoulder, models.KeypointLeftElbow, models.KeypointLeftWrist},
	{models.KeypointRightShoulder, models.KeypointRightElbow, models.KeypointRightWrist},
}
