package analysis

import (
	"math"

	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/stats"
)

func init() {
	Register(&TensionAnalyzer{})
}

const (
	// tensionMaxOffset normalizes the mean shoulder-hip horizontal offset
	// into the tension score, in pixels
	tensionMaxOffset = 50.0

	// tensionMinSamples is the minimum number of shoulder/hip observations
	// required before scoring body tension
	tensionMinSamples = 10
)

// TensionAnalyzer scores core engagement over the whole climb from the
// horizontal offset between the shoulder and hip midpoints. Sags are sudden
// excursions of the offset above its mean plus one standard deviation.
type TensionAnalyzer struct{}

// Name returns the analyzer name
func (a *TensionAnalyzer) Name() string { return "body_tension" }

// Analyze computes the whole-climb body tension score and sag count over
// frames where both midpoints are visible
func (a *TensionAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	var offsets []float64
	for i := range stream.Frames {
		f := &stream.Frames[i]
		shoulder, sok := f.VisibleKeypoint(models.KeypointMidShoulder)
		hip, hok := f.VisibleKeypoint(models.KeypointMidHip)
		if !sok || !hok {
			continue
		}
		offsets = append(offsets, math.Abs(shoulder.X-hip.X))
	}

	if len(offsets) < tensionMinSamples {
		// Too little signal to judge; report neutral engagement
		m.BodyTensionScore = 1.0
		m.SagCount = 0
		return
	}

	sagThreshold := stats.Mean(offsets) + stats.StdDev(offsets)
	for i := 1; i < len(offsets); i++ {
		if offsets[i] > sagThreshold && offsets[i-1] <= sagThreshold {
			m.SagCount++
		}
	}

	score := 1.0 - stats.Mean(offsets)/tensionMaxOffset
	if score < 0 {
		score = 0
	}
	m.BodyTensionScore = score
}
