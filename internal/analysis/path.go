package analysis

import (
	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
)

func init() {
	Register(&PathAnalyzer{})
}

// PathAnalyzer computes hip path efficiency: the ratio of the direct
// start-to-end displacement to the cumulative path length of the mid-hip
// trajectory. A straight climb scores 1.0; a climb that returns to its
// start scores 0.0.
type PathAnalyzer struct{}

// Name returns the analyzer name
func (a *PathAnalyzer) Name() string { return "path_efficiency" }

// Analyze computes path efficiency, path distances and climb duration over
// the frames with a visible mid_hip keypoint
func (a *PathAnalyzer) Analyze(stream *models.PoseStream, m *models.ClimbMetrics) {
	tr := pose.ExtractTrajectory(stream, models.KeypointMidHip)
	m.PathSamples = tr.Len()

	if tr.Len() >= 1 {
		m.ClimbDuration = tr.Timestamps[tr.Len()-1] - tr.Timestamps[0]
	}

	eff, total, direct := PathEfficiency(tr)
	m.PathEfficiency = eff
	m.TotalDistance = total
	m.DirectDistance = direct
}

// PathEfficiency calculates (efficiency, totalDistance, directDistance) for
// a trajectory. Degenerate trajectories (fewer than two samples, or a total
// path shorter than 1e-6 pixels) score a neutral 1.0 with zero distances.
func PathEfficiency(tr pose.Trajectory) (float64, float64, float64) {
	if tr.Len() < 2 {
		return 1.0, 0, 0
	}

	total := geom.PathLength(tr.Points)
	if total < 1e-6 {
		return 1.0, 0, 0
	}

	direct := geom.Dist(tr.Points[0], tr.Points[tr.Len()-1])
	eff := direct / total
	if eff > 1 {
		eff = 1
	}
	return eff, total, direct
}
