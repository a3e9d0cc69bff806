package analysis

import (
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
	"github.com/betaview/betaview-backend/internal/stats"
)

func init() {
	Register(&StabilityAnalyzer{})
}

const (
	// settleSpeedThreshold is the ankle speed below which a foot may be
	// settling onto a hold, in pixels per second
	settleSpeedThreshold = 10.0

	// settleMinSamples is how many consecutive slow samples confirm a settle
	settleMinSamples = 5

	// settleJitterWindow is how many post-settle samples feed the jitter
	// estimate (roughly half a second at 30 fps)
	settleJitterWindow = 15

	// cleanJitterThreshold is the jitter below which a placement counts
	// as clean
	cleanJitterThreshold = 8.0
)

// settleEvent is one detected foot placement
type settleEvent struct {
	jitter float64
}

// StabilityAnalyzer detects foot placements: moments where an ankle slows
// below the settle threshold and stays slow. Positional jitter in the
// window right after each settle measures how clean the placement was.
type StabilityAnalyzer struct{}

// Name returns the analyzer name
func (a *StabilityAnalyzer) Name() string { return "foot_stability" }

// Analyze detects settle events for both ankles and aggregates placement
// quality metrics
func (a *StabilityAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	var events []settleEvent
	for _, ankle := range []string{models.KeypointLeftAnkle, models.KeypointRightAnkle} {
		tr := pose.ExtractTrajectory(stream, ankle)
		events = append(events, detectSettleEvents(tr)...)
	}

	m.TotalPlacements = len(events)
	if len(events) == 0 {
		m.StabilityScore = 1.0
		return
	}

	jitters := make([]float64, len(events))
	for i, e := range events {
		jitters[i] = e.jitter
		if e.jitter < cleanJitterThreshold {
			m.CleanPlacements++
		}
	}
	m.AvgFootJitter = stats.Mean(jitters)
	m.StabilityScore = float64(m.CleanPlacements) / float64(m.TotalPlacements)
}

// detectSettleEvents scans an ankle trajectory for settles. A settle needs
// the speed to drop below the threshold and stay below 1.5x the threshold
// for settleMinSamples consecutive samples; the scan then skips past the
// event before looking for the next one.
func detectSettleEvents(tr pose.Trajectory) []settleEvent {
	if tr.Len() < settleMinSamples+10 {
		return nil
	}

	speeds := tr.Velocities()
	var events []settleEvent

	i := 0
	for i < len(speeds)-settleMinSamples {
		if speeds[i] >= settleSpeedThreshold {
			i++
			continue
		}

		settled := true
		for _, v := range speeds[i : i+settleMinSamples] {
			if v >= settleSpeedThreshold*1.5 {
				settled = false
				break
			}
		}
		if !settled {
			i++
			continue
		}

		window := tr.Len() - i - settleMinSamples
		if window > settleJitterWindow {
			window = settleJitterWindow
		}
		if window > 0 {
			positions := tr.Points[i+settleMinSamples : i+settleMinSamples+window]
			jitter := 0.0
			if len(positions) > 1 {
				xs := make([]float64, len(positions))
				ys := make([]float64, len(positions))
				for j, p := range positions {
					xs[j] = p.X
					ys[j] = p.Y
				}
				jitter = stats.StdDev(xs) + stats.StdDev(ys)
			}
			events = append(events, settleEvent{jitter: jitter})
		}

		i += settleMinSamples + 10
	}

	return events
}
