package overlay

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

const (
	skeletonWidth  = 2.0
	keypointRadius = 5.0
)

var skeletonColor = Color{R: 0, G: 255, B: 0, A: 1}

// skeletonConnections are the 12 anatomical segments of the skeleton overlay
var skeletonConnections = [12][2]string{
	{models.KeypointLeftShoulder, models.KeypointRightShoulder},
	{models.KeypointLeftShoulder, models.KeypointLeftElbow},
	{models.KeypointLeftElbow, models.KeypointLeftWrist},
	{models.KeypointRightShoulder, models.KeypointRightElbow},
	{models.KeypointRightElbow, models.KeypointRightWrist},
	{models.KeypointLeftShoulder, models.KeypointLeftHip},
	{models.KeypointRightShoulder, models.KeypointRightHip},
	{models.KeypointLeftHip, models.KeypointRightHip},
	{models.KeypointLeftHip, models.KeypointLeftKnee},
	{models.KeypointLeftKnee, models.KeypointLeftAnkle},
	{models.KeypointRightHip, models.KeypointRightKnee},
	{models.KeypointRightKnee, models.KeypointRightAnkle},
}

// drawSkeleton draws a segment for every connection whose endpoints both clear
// the visibility threshold, then a marker at every visible keypoint whether
// or not it participates in a drawn segment.
func drawSkeleton(f *models.PoseFrame, t geom.Transform) []Command {
	var cmds []Command

	for _, conn := range skeletonConnections {
		start, sok := f.VisibleKeypoint(conn[0])
		end, eok := f.VisibleKeypoint(conn[1])
		if !sok || !eok {
			continue
		}
		a := t.Apply(start.Point())
		b := t.Apply(end.Point())
		cmds = append(cmds, line(Point{a.X, a.Y}, Point{b.X, b.Y}, skeletonColor, skeletonWidth))
	}

	for _, kp := range f.Keypoints {
		if !kp.Visible() {
			continue
		}
		p := t.Apply(kp.Point())
		cmds = append(cmds, circle(Point{p.X, p.Y}, keypointRadius, skeletonColor, 0, true))
	}

	return cmds
}
