package pose

import (
	"fmt"

	"github.com/betaview/betaview-backend/internal/models"
)

// Normalize validates a PoseStream document delivered by the pose-extraction
// service and derives the synthetic mid_hip and mid_shoulder keypoints for
// frames that lack them. The stream is modified in place.
func Normalize(s *models.PoseStream) error {
	if s == nil {
		return fmt.Errorf("nil pose stream")
	}
	if s.FPS <= 0 {
		return fmt.Errorf("invalid fps: %v", s.FPS)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid capture size: %dx%d", s.Width, s.Height)
	}

	lastID := -1
	for i := range s.Frames {
		f := &s.Frames[i]
		if f.FrameID <= lastID {
			return fmt.Errorf("frame ids not strictly increasing at index %d (got %d after %d)", i, f.FrameID, lastID)
		}
		lastID = f.FrameID

		if f.Keypoints == nil {
			f.Keypoints = make(map[string]models.Keypoint)
		}
		deriveMidpoint(f, models.KeypointMidHip, models.KeypointLeftHip, models.KeypointRightHip)
		deriveMidpoint(f, models.KeypointMidShoulder, models.KeypointLeftShoulder, models.KeypointRightShoulder)
	}

	return nil
}

func deriveMidpoint(f *models.PoseFrame, name, leftName, rightName string) {
	if _, ok := f.Keypoints[name]; ok {
		return
	}
	left, lok := f.Keypoints[leftName]
	right, rok := f.Keypoints[rightName]
	if !lok || !rok {
		return
	}
	f.Keypoints[name] = models.MidpointOf(left, right)
}
