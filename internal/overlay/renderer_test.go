package overlay

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betaview/betaview-backend/internal/models"
)

func testStream() *models.PoseStream {
	return &models.PoseStream{FPS: 30, Width: 100, Height: 100}
}

func frameWith(kps map[string]models.Keypoint) *models.PoseFrame {
	return &models.PoseFrame{FrameID: 0, Timestamp: 0, Keypoints: kps}
}

func TestRenderClearsFirst(t *testing.T) {
	r := NewRenderer(100, 100, testStream())

	cmds := r.Render(nil, models.OverlayConfig{Skeleton: true}, nil)
	require.Len(t, cmds, 1)
	assert.Equal(t, OpClear, cmds[0].Op)

	cmds = r.Render(frameWith(nil), models.OverlayConfig{}, nil)
	require.NotEmpty(t, cmds)
	assert.Equal(t, OpClear, cmds[0].Op)
}

func TestSkeletonVisibilityGating(t *testing.T) {
	r := NewRenderer(100, 100, testStream())

	// Elbow below threshold: the shoulder-elbow segment is dropped but the
	// shoulder marker still draws
	f := frameWith(map[string]models.Keypoint{
		models.KeypointLeftShoulder: {X: 10, Y: 10, Visibility: 0.9},
		models.KeypointLeftElbow:    {X: 20, Y: 20, Visibility: 0.4},
	})
	cmds := r.Render(f, models.OverlayConfig{Skeleton: true}, nil)
	require.Len(t, cmds, 2) // clear + one marker
	assert.Equal(t, OpCircle, cmds[1].Op)

	f.Keypoints[models.KeypointLeftElbow] = models.Keypoint{X: 20, Y: 20, Visibility: 0.9}
	cmds = r.Render(f, models.OverlayConfig{Skeleton: true}, nil)
	require.Len(t, cmds, 4) // clear + segment + two markers
	assert.Equal(t, OpLine, cmds[1].Op)
	assert.Equal(t, []Point{{X: 10, Y: 10}, {X: 20, Y: 20}}, cmds[1].Points)
}

func TestSkeletonScalesToDisplay(t *testing.T) {
	r := NewRenderer(200, 50, testStream()) // 2x horizontal, 0.5x vertical

	f := frameWith(map[string]models.Keypoint{
		models.KeypointNose: {X: 10, Y: 40, Visibility: 0.9},
	})
	cmds := r.Render(f, models.OverlayConfig{Skeleton: true}, nil)
	require.Len(t, cmds, 2)
	assert.Equal(t, &Point{X: 20, Y: 20}, cmds[1].Center)
}

func TestBodyTensionClassification(t *testing.T) {
	assert.Equal(t, TensionEngaged, ClassifyTension(0.9))
	assert.Equal(t, TensionEngaged, ClassifyTension(0.7)) // boundary inclusive
	assert.Equal(t, TensionModerate, ClassifyTension(0.699))
	assert.Equal(t, TensionModerate, ClassifyTension(0.4)) // boundary inclusive
	assert.Equal(t, TensionSagging, ClassifyTension(0.399))
	assert.Equal(t, TensionSagging, ClassifyTension(0))
}

func TestFrameTension(t *testing.T) {
	// Lateral offset 10 over torso length 100: tension 0.9
	f := frameWith(map[string]models.Keypoint{
		models.KeypointMidShoulder: {X: 10, Y: 0, Visibility: 0.9},
		models.KeypointMidHip:      {X: 0, Y: 100, Visibility: 0.9},
	})
	tension, ok := FrameTension(f)
	require.True(t, ok)
	assert.InDelta(t, 0.9, tension, 1e-9)

	// Horizontal body: torso length degenerates, no value
	f = frameWith(map[string]models.Keypoint{
		models.KeypointMidShoulder: {X: 10, Y: 50, Visibility: 0.9},
		models.KeypointMidHip:      {X: 60, Y: 50, Visibility: 0.9},
	})
	_, ok = FrameTension(f)
	assert.False(t, ok)

	// Occluded midpoint: no value
	f = frameWith(map[string]models.Keypoint{
		models.KeypointMidShoulder: {X: 10, Y: 0, Visibility: 0.3},
		models.KeypointMidHip:      {X: 0, Y: 100, Visibility: 0.9},
	})
	_, ok = FrameTension(f)
	assert.False(t, ok)
}

func TestBodyTensionOverlayColor(t *testing.T) {
	r := NewRenderer(100, 100, testStream())

	f := frameWith(map[string]models.Keypoint{
		models.KeypointMidShoulder: {X: 0, Y: 0, Visibility: 0.9},
		models.KeypointMidHip:      {X: 0, Y: 100, Visibility: 0.9},
	})
	cmds := r.Render(f, models.OverlayConfig{BodyTension: true}, nil)
	require.Len(t, cmds, 2)
	assert.Equal(t, OpLine, cmds[1].Op)
	assert.Equal(t, tensionColors[TensionEngaged], cmds[1].Color)

	// Shift the shoulder far sideways: sagging
	f.Keypoints[models.KeypointMidShoulder] = models.Keypoint{X: 80, Y: 0, Visibility: 0.9}
	cmds = r.Render(f, models.OverlayConfig{BodyTension: true}, nil)
	require.Len(t, cmds, 2)
	assert.Equal(t, tensionColors[TensionSagging], cmds[1].Color)
}

func TestFootStabilityMarkers(t *testing.T) {
	r := NewRenderer(100, 100, testStream())

	f := frameWith(map[string]models.Keypoint{
		models.KeypointLeftAnkle:  {X: 30, Y: 90, Visibility: 0.9},
		models.KeypointRightAnkle: {X: 60, Y: 90, Visibility: 0.2},
	})
	cmds := r.Render(f, models.OverlayConfig{FootStability: true}, nil)
	require.Len(t, cmds, 3) // clear + ring + disk for the one visible ankle

	ring, disk := cmds[1], cmds[2]
	assert.Equal(t, OpCircle, ring.Op)
	assert.False(t, ring.Fill)
	assert.Equal(t, footRingRadius, ring.Radius)
	assert.True(t, disk.Fill)
	assert.Equal(t, footDiskRadius, disk.Radius)
	assert.Less(t, disk.Color.A, 1.0)
}

func TestElbowArc(t *testing.T) {
	elbow := r2.Point{X: 0, Y: 0}

	// Shoulder ray at 0, wrist ray at pi/2: short sweep
	a1, a2, long := ElbowArc(r2.Point{X: 10, Y: 0}, elbow, r2.Point{X: 0, Y: 10})
	assert.InDelta(t, 0, a1, 1e-9)
	assert.InDelta(t, math.Pi/2, a2, 1e-9)
	assert.False(t, long)

	// Wrist ray at -pi/2: the normalized sweep is 3*pi/2, the long way
	_, _, long = ElbowArc(r2.Point{X: 10, Y: 0}, elbow, r2.Point{X: 0, Y: -10})
	assert.True(t, long)
}

func TestElbowAnglesOverlay(t *testing.T) {
	r := NewRenderer(100, 100, testStream())

	f := frameWith(map[string]models.Keypoint{
		models.KeypointLeftShoulder: {X: 10, Y: 10, Visibility: 0.9},
		models.KeypointLeftElbow:    {X: 30, Y: 30, Visibility: 0.9},
		models.KeypointLeftWrist:    {X: 50, Y: 10, Visibility: 0.9},
		// Right wrist occluded: no right arc
		models.KeypointRightShoulder: {X: 60, Y: 10, Visibility: 0.9},
		models.KeypointRightElbow:    {X: 80, Y: 30, Visibility: 0.9},
		models.KeypointRightWrist:    {X: 90, Y: 10, Visibility: 0.1},
	})
	cmds := r.Render(f, models.OverlayConfig{ElbowAngles: true}, nil)
	require.Len(t, cmds, 2)
	assert.Equal(t, OpArc, cmds[1].Op)
	assert.Equal(t, elbowArcRadius, cmds[1].Radius)
	assert.Equal(t, &Point{X: 30, Y: 30}, cmds[1].Center)
}

func TestHipPathTrail(t *testing.T) {
	// Two frames of visible hip at 30 fps on a doubled display
	r := NewRenderer(200, 200, testStream())
	hist := NewHipHistory()

	f0 := frameWith(map[string]models.Keypoint{
		models.KeypointMidHip: {X: 0, Y: 0, Visibility: 0.9},
	})
	cmds := r.Render(f0, models.OverlayConfig{HipPath: true}, hist)
	require.Len(t, cmds, 1) // a single buffered point draws nothing yet
	assert.Equal(t, 1, hist.Len())

	f1 := frameWith(map[string]models.Keypoint{
		models.KeypointMidHip: {X: 10, Y: 0, Visibility: 0.9},
	})
	cmds = r.Render(f1, models.OverlayConfig{HipPath: true}, hist)
	require.Len(t, cmds, 2)
	assert.Equal(t, OpPolyline, cmds[1].Op)
	// Pose-space positions scaled onto the display at draw time
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 20, Y: 0}}, cmds[1].Points)
}

func TestHipPathSkipsOccludedHip(t *testing.T) {
	r := NewRenderer(100, 100, testStream())
	hist := NewHipHistory()

	f := frameWith(map[string]models.Keypoint{
		models.KeypointMidHip: {X: 10, Y: 10, Visibility: 0.4},
	})
	r.Render(f, models.OverlayConfig{HipPath: true}, hist)
	assert.Equal(t, 0, hist.Len())
}

func TestEnabledKindsOrder(t *testing.T) {
	kinds := EnabledKinds(models.OverlayConfig{
		Skeleton: true, BodyTension: true, FootStability: true,
		ElbowAngles: true, HipPath: true,
	})
	assert.Equal(t, []Kind{KindSkeleton, KindBodyTension, KindFootStability, KindElbowAngles, KindHipPath}, kinds)

	assert.Empty(t, EnabledKinds(models.OverlayConfig{}))
	assert.Equal(t, []Kind{KindHipPath}, EnabledKinds(models.OverlayConfig{HipPath: true}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "skeleton", KindSkeleton.String())
	assert.Equal(t, "bodyTension", KindBodyTension.String())
	assert.Equal(t, "footStability", KindFootStability.String())
	assert.Equal(t, "elbowAngles", KindElbowAngles.String())
	assert.Equal(t, "hipPath", KindHipPath.String())
}
