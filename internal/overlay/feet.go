package overlay

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

const (
	footRingRadius = 15.0
	footDiskRadius = 10.0
	footRingWidth  = 2.0
)

var (
	footRingColor = Color{R: 0, G: 180, B: 255, A: 1}
	footDiskColor = Color{R: 0, G: 180, B: 255, A: 0.35}
)

// drawFootStability marks each visible ankle with a fixed-radius ring and a
// smaller translucent disk at the scaled position. The marker is a static
// placement cue; no temporal jitter is computed here, that analysis lives
// in the batch metrics.
func drawFootStability(f *models.PoseFrame, t geom.Transform) []Command {
	var cmds []Command
	for _, ankle := range []string{models.KeypointLeftAnkle, models.KeypointRightAnkle} {
		kp, ok := f.VisibleKeypoint(ankle)
		if !ok {
			continue
		}
		p := t.Apply(kp.Point())
		center := Point{p.X, p.Y}
		cmds = append(cmds,
			circle(center, footRingRadius, footRingColor, footRingWidth, false),
			circle(center, footDiskRadius, footDiskColor, 0, true),
		)
	}
	return cmds
}
