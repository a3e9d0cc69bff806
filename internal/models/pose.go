package models

import "github.com/golang/geo/r2"

// Keypoint names delivered by the pose-extraction service (MediaPipe landmark
// subset), plus the synthetic midpoints derived on ingest.
const (
	KeypointNose          = "nose"
	KeypointLeftShoulder  = "left_shoulder"
	KeypointRightShoulder = "right_shoulder"
	KeypointLeftElbow     = "left_elbow"
	KeypointRightElbow    = "right_elbow"
	KeypointLeftWrist     = "left_wrist"
	KeypointRightWrist    = "right_wrist"
	KeypointLeftHip       = "left_hip"
	KeypointRightHip      = "right_hip"
	KeypointLeftKnee      = "left_knee"
	KeypointRightKnee     = "right_knee"
	KeypointLeftAnkle     = "left_ankle"
	KeypointRightAnkle    = "right_ankle"
	KeypointMidHip        = "mid_hip"
	KeypointMidShoulder   = "mid_shoulder"
)

// VisibilityThreshold is the minimum keypoint visibility required before a
// keypoint participates in any drawing or metric computation
const VisibilityThreshold = 0.5

// Keypoint represents a single detected body landmark in pose space
type Keypoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility"`
}

// Point returns the keypoint position as an r2 point
func (k Keypoint) Point() r2.Point {
	return r2.Point{X: k.X, Y: k.Y}
}

// Visible reports whether the keypoint clears the visibility threshold
func (k Keypoint) Visible() bool {
	return k.Visibility > VisibilityThreshold
}

// MidpointOf derives a synthetic keypoint at the midpoint of two parents.
// Visibility is the minimum of the two parent visibilities.
func MidpointOf(a, b Keypoint) Keypoint {
	vis := a.Visibility
	if b.Visibility < vis {
		vis = b.Visibility
	}
	return Keypoint{
		X:          (a.X + b.X) / 2,
		Y:          (a.Y + b.Y) / 2,
		Visibility: vis,
	}
}

// PoseFrame holds the keypoints detected for a single video frame
type PoseFrame struct {
	FrameID   int                 `json:"frame_id"`
	Timestamp float64             `json:"timestamp"` // seconds from video start
	Keypoints map[string]Keypoint `json:"keypoints"`
}

// Keypoint looks up a keypoint by name
func (f *PoseFrame) Keypoint(name string) (Keypoint, bool) {
	kp, ok := f.Keypoints[name]
	return kp, ok
}

// VisibleKeypoint looks up a keypoint by name and requires it to clear the
// visibility threshold
func (f *PoseFrame) VisibleKeypoint(name string) (Keypoint, bool) {
	kp, ok := f.Keypoints[name]
	if !ok || !kp.Visible() {
		return Keypoint{}, false
	}
	return kp, true
}

// PoseStream is the complete ordered pose sequence extracted from one video.
// It is immutable for the life of a viewing session.
type PoseStream struct {
	ID     string      `json:"id,omitempty"`
	FPS    float64     `json:"fps"`
	Width  int         `json:"width"`  // native capture width in pixels
	Height int         `json:"height"` // native capture height in pixels
	Frames []PoseFrame `json:"frames"`
}

// FrameCount returns the number of frames in the stream
func (s *PoseStream) FrameCount() int {
	return len(s.Frames)
}

// Duration returns the timestamp of the last frame, or 0 for an empty stream
func (s *PoseStream) Duration() float64 {
	if len(s.Frames) == 0 {
		return 0
	}
	return s.Frames[len(s.Frames)-1].Timestamp
}
