package analysis

import (
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
	"github.com/betaview/betaview-backend/internal/stats"
)

func init() {
	Register(&ReachAnalyzer{})
}

const (
	// reachSpeedThreshold is the wrist speed above which a frame belongs
	// to a reach, in pixels per second
	reachSpeedThreshold = 100.0

	// longReachSeconds is the run duration above which a reach counts as long
	longReachSeconds = 1.0
)

// ReachAnalyzer segments each wrist trajectory into reaches: contiguous
// runs of samples where wrist speed stays above the threshold. Runs from
// both wrists are pooled into the counts.
type ReachAnalyzer struct{}

// Name returns the analyzer name
func (a *ReachAnalyzer) Name() string { return "reaches" }

// Analyze segments reaches per wrist and records run counts and durations
func (a *ReachAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	var durations []float64
	for _, wrist := range []string{models.KeypointLeftWrist, models.KeypointRightWrist} {
		tr := pose.ExtractTrajectory(stream, wrist)
		durations = append(durations, ReachDurations(tr)...)
	}

	m.ReachCount = len(durations)
	for _, d := range durations {
		if d > longReachSeconds {
			m.LongReachCount++
		}
	}
	if len(durations) > 0 {
		m.AvgReachSeconds = stats.Mean(durations)
	}
}

// ReachDurations returns the duration of every contiguous run of trajectory
// samples whose speed exceeds the reach threshold. A run over speed samples
// i..j spans the frames i..j+1; its duration is the timestamp difference
// between the first and last spanned frame.
func ReachDurations(tr pose.Trajectory) []float64 {
	speeds := tr.Velocities()
	if len(speeds) == 0 {
		return nil
	}

	var durations []float64
	runStart := -1
	for i, v := range speeds {
		fast := v > reachSpeedThreshold
		if fast && runStart < 0 {
			runStart = i
		}
		if (!fast || i == len(speeds)-1) && runStart >= 0 {
			runEnd := i // exclusive sample index when the run broke here
			if fast && i == len(speeds)-1 {
				runEnd = i + 1
			}
			durations = append(durations, tr.Timestamps[runEnd]-tr.Timestamps[runStart])
			runStart = -1
		}
	}
	return durations
}
