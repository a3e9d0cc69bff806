package analysis

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
	"github.com/betaview/betaview-backend/internal/stats"
)

func init() {
	Register(&SmoothnessAnalyzer{})
}

// jerkScale converts mean hip jerk (pixels per second cubed) into the
// smoothness score denominator
const jerkScale = 1000.0

// SmoothnessAnalyzer estimates movement smoothness from a finite-difference
// proxy of mid-hip jerk. Each derivative step uses the actual timestamp
// delta of its samples, so irregular frame gaps in the valid subset do not
// distort the estimate. Score is 1/(1+meanJerk/scale), in (0,1].
type SmoothnessAnalyzer struct{}

// Name returns the analyzer name
func (a *SmoothnessAnalyzer) Name() string { return "smoothness" }

// Analyze computes the jerk-based smoothness score over the visible mid-hip
// trajectory
func (a *SmoothnessAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	tr := pose.ExtractTrajectory(stream, models.KeypointMidHip)
	jerks := jerkMagnitudes(tr)

	m.SmoothnessSamples = len(jerks)
	if len(jerks) == 0 {
		m.Smoothness = 1.0
		return
	}
	m.Smoothness = 1.0 / (1.0 + stats.Mean(jerks)/jerkScale)
}

// jerkMagnitudes computes discrete third-derivative magnitudes of a
// trajectory. Needs at least four samples; steps with non-positive time
// deltas are dropped.
func jerkMagnitudes(tr pose.Trajectory) []float64 {
	vel, velTs := differentiate(tr.Points, tr.Timestamps)
	acc, accTs := differentiate(vel, velTs)
	jerk, _ := differentiate(acc, accTs)

	mags := make([]float64, 0, len(jerk))
	for _, j := range jerk {
		mags = append(mags, math.Hypot(j.X, j.Y))
	}
	return mags
}

// differentiate computes finite-difference derivatives of a vector series,
// stamping each derivative at the midpoint time of its interval
func differentiate(points []r2.Point, ts []float64) ([]r2.Point, []float64) {
	var out []r2.Point
	var outTs []float64
	for i := 1; i < len(points); i++ {
		dt := ts[i] - ts[i-1]
		if dt <= 0 {
			continue
		}
		d := points[i].Sub(points[i-1])
		out = append(out, r2.Point{X: d.X / dt, Y: d.Y / dt})
		outTs = append(outTs, (ts[i]+ts[i-1])/2)
	}
	return out, outTs
}
