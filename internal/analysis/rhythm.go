package analysis

import (
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
	"github.com/betaview/betaview-backend/internal/stats"
)

func init() {
	Register(&RhythmAnalyzer{})
}

// staticSpeedThreshold is the hip speed below which the climber counts as
// static, in pixels per second
const staticSpeedThreshold = 15.0

// Phase classification for a run of frames
type phaseType int

const (
	phaseStatic phaseType = iota
	phaseMoving
)

// movementPhase is one contiguous static or moving run of the hip trajectory
type movementPhase struct {
	kind     phaseType
	duration float64 // seconds
}

// RhythmAnalyzer segments the climb into alternating static and moving
// phases of the mid-hip trajectory and derives rhythm metrics: the number
// of distinct moves, the average pause length and the spread of pause
// lengths.
type RhythmAnalyzer struct{}

// Name returns the analyzer name
func (a *RhythmAnalyzer) Name() string { return "rhythm" }

// Analyze classifies movement phases and fills the rhythm metrics
func (a *RhythmAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	tr := pose.ExtractTrajectory(stream, models.KeypointMidHip)
	phases := classifyPhases(tr)

	var pauses []float64
	for _, p := range phases {
		switch p.kind {
		case phaseMoving:
			m.MoveCount++
		case phaseStatic:
			pauses = append(pauses, p.duration)
		}
	}

	if len(pauses) > 0 {
		m.AvgPauseSeconds = stats.Mean(pauses)
		m.RhythmVariance = stats.StdDev(pauses)
	}
}

// classifyPhases splits a trajectory into contiguous static/moving phases
// based on per-sample hip speed
func classifyPhases(tr pose.Trajectory) []movementPhase {
	speeds := tr.Velocities()
	if len(speeds) == 0 {
		return nil
	}

	classify := func(v float64) phaseType {
		if v < staticSpeedThreshold {
			return phaseStatic
		}
		return phaseMoving
	}

	var phases []movementPhase
	current := classify(speeds[0])
	start := 0

	for i, v := range speeds {
		kind := classify(v)
		if kind != current {
			phases = append(phases, movementPhase{
				kind:     current,
				duration: tr.Timestamps[i] - tr.Timestamps[start],
			})
			current = kind
			start = i
		}
	}

	phases = append(phases, movementPhase{
		kind:     current,
		duration: tr.Timestamps[len(tr.Timestamps)-1] - tr.Timestamps[start],
	})

	return phases
}
