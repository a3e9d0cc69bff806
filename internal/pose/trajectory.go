package pose

import (
	"github.com/golang/geo/r2"

	"github.com/betaview/betaview-backend/internal/geom"
	"github.com/betaview/betaview-backend/internal/models"
)

// Trajectory is the time-stamped position sequence of one keypoint across
// the frames where it cleared the visibility threshold
type Trajectory struct {
	Points     []r2.Point
	Timestamps []float64
}

// Len returns the number of samples in the trajectory
func (t Trajectory) Len() int {
	return len(t.Points)
}

// ExtractTrajectory collects the visible positions of a named keypoint over
// the whole stream. Frames where the keypoint is missing or below the
// visibility threshold are skipped.
func ExtractTrajectory(s *models.PoseStream, name string) Trajectory {
	var tr Trajectory
	if s == nil {
		return tr
	}
	for i := range s.Frames {
		kp, ok := s.Frames[i].VisibleKeypoint(name)
		if !ok {
			continue
		}
		tr.Points = append(tr.Points, kp.Point())
		tr.Timestamps = append(tr.Timestamps, s.Frames[i].Timestamp)
	}
	return tr
}

// Velocities calculates speeds between consecutive trajectory samples in
// pixels per second. Non-positive time deltas yield a zero speed sample.
// The result has one fewer entry than the trajectory.
func (t Trajectory) Velocities() []float64 {
	if t.Len() < 2 {
		return nil
	}
	speeds := make([]float64, 0, t.Len()-1)
	for i := 0; i < t.Len()-1; i++ {
		dt := t.Timestamps[i+1] - t.Timestamps[i]
		if dt > 0 {
			speeds = append(speeds, geom.Dist(t.Points[i], t.Points[i+1])/dt)
		} else {
			speeds = append(speeds, 0)
		}
	}
	return speeds
}
