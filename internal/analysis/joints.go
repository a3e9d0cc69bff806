package analysis

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

func init() {
	Register(&JointAngleAnalyzer{})
}

// openAngleDeg is the joint angle at or above which an arm counts as
// extended ("open")
const openAngleDeg = 150.0

// JointAngleAnalyzer computes the fraction of arm observations with an open
// elbow angle (shoulder-elbow-wrist) and, independently, an open shoulder
// angle (elbow-shoulder-hip). Left and right arm observations are pooled;
// a frame contributes one observation per arm with all three keypoints
// visible.
type JointAngleAnalyzer struct{}

// Name returns the analyzer name
func (a *JointAngleAnalyzer) Name() string { return "joint_angles" }

type armJoints struct {
	shoulder, elbow, wrist, hip string
}

var arms = []armJoints{
	{models.KeypointLeftShoulder, models.KeypointLeftElbow, models.KeypointLeftWrist, models.KeypointLeftHip},
	{models.KeypointRightShoulder, models.KeypointRightElbow, models.KeypointRightWrist, models.KeypointRightHip},
}

// Analyze counts open elbow and shoulder observations over the visible
// arm keypoints of every frame
func (a *JointAngleAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	var elbowOpen, elbowTotal, shoulderOpen, shoulderTotal int

	for i := range stream.Frames {
		f := &stream.Frames[i]
		for _, arm := range arms {
			shoulder, sok := f.VisibleKeypoint(arm.shoulder)
			elbow, eok := f.VisibleKeypoint(arm.elbow)
			wrist, wok := f.VisibleKeypoint(arm.wrist)
			hip, hok := f.VisibleKeypoint(arm.hip)

			if sok && eok && wok {
				elbowTotal++
				if geom.JointAngleDeg(elbow.Point(), shoulder.Point(), wrist.Point()) >= openAngleDeg {
					elbowOpen++
				}
			}
			if sok && eok && hok {
				shoulderTotal++
				if geom.JointAngleDeg(shoulder.Point(), elbow.Point(), hip.Point()) >= openAngleDeg {
					shoulderOpen++
				}
			}
		}
	}

	m.ElbowSamples = elbowTotal
	if elbowTotal > 0 {
		m.ElbowOpenRatio = float64(elbowOpen) / float64(elbowTotal)
	}
	m.ShoulderSamples = shoulderTotal
	if shoulderTotal > 0 {
		m.ShoulderOpenRatio = float64(shoulderOpen) / float64(shoulderTotal)
	}
}
