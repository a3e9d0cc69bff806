package analysis

import (
	"math"

	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
	"github.com/betaview/betaview-backend/internal/stats"
)

func init() {
	Register(&EntropyAnalyzer{})
}

// directionBins is the number of 45-degree angular buckets used for the
// displacement direction distribution
const directionBins = 8

// EntropyAnalyzer computes trajectory entropy: the normalized Shannon
// entropy of the angular distribution of consecutive mid-hip displacement
// vectors. 0 means every move went the same way; 1 means directions were
// spread uniformly over all eight buckets.
type EntropyAnalyzer struct{}

// Name returns the analyzer name
func (a *EntropyAnalyzer) Name() string { return "trajectory_entropy" }

// Analyze bins hip displacement directions and computes normalized entropy.
// Zero-length displacements carry no direction and are excluded from the
// distribution.
func (a *EntropyAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	tr := pose.ExtractTrajectory(stream, models.KeypointMidHip)

	bins := make([]float64, directionBins)
	samples := 0
	for i := 1; i < tr.Len(); i++ {
		d := tr.Points[i].Sub(tr.Points[i-1])
		if d.X == 0 && d.Y == 0 {
			continue
		}
		angle := geom.NormalizeAngle(geom.Heading(d))
		bin := int(angle / (2 * math.Pi / directionBins))
		if bin >= directionBins {
			bin = directionBins - 1
		}
		bins[bin]++
		samples++
	}

	m.EntropySamples = samples
	if samples == 0 {
		m.TrajectoryEntropy = 0
		return
	}
	m.TrajectoryEntropy = stats.NormalizedEntropy(bins)
}
