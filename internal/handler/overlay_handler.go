package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/overlay"
	"github.com/betaview/betaview-backend/internal/playback"
	"github.com/betaview/betaview-backend/internal/service"
	"github.com/betaview/betaview-backend/pkg/response"
)

// OverlayHandler exposes the frame synchronizer and overlay renderer as a
// stateless preview surface. Live playback runs client-side against a
// playback.Session; these endpoints serve debugging and thumbnail
// rendering, so loading the full stream per request is acceptable here.
type OverlayHandler struct {
	service *service.StreamService
}

// NewOverlayHandler creates a new overlay handler
func NewOverlayHandler(service *service.StreamService) *OverlayHandler {
	return &OverlayHandler{service: service}
}

// ResolveFrame maps a playback time to its pose frame
// GET /api/v1/streams/:id/frame?t=1.23
func (h *OverlayHandler) ResolveFrame(c *gin.Context) {
	t, err := strconv.ParseFloat(c.Query("t"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid playback time")
		return
	}

	stream, err := h.service.GetStream(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	frame, ok := playback.NewSynchronizer(stream).Resolve(t)
	if !ok {
		response.NotFound(c, "Stream has no frames")
		return
	}
	response.Success(c, frame)
}

// PreviewRequest is the request body for an overlay preview
type PreviewRequest struct {
	Config models.OverlayConfig `json:"config"`
	Width  float64              `json:"width" binding:"required"`
	Height float64              `json:"height" binding:"required"`
}

// Preview renders the draw commands for one playback instant
// POST /api/v1/streams/:id/overlays?t=1.23
func (h *OverlayHandler) Preview(c *gin.Context) {
	t, err := strconv.ParseFloat(c.Query("t"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid playback time")
		return
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid preview request")
		return
	}

	stream, err := h.service.GetStream(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	renderer := overlay.NewRenderer(req.Width, req.Height, stream)
	frame, ok := playback.NewSynchronizer(stream).Resolve(t)
	if !ok {
		response.Success(c, gin.H{"commands": renderer.Render(nil, req.Config, nil)})
		return
	}

	hist := rebuildHistory(stream, frame.FrameID)
	cmds := renderer.Render(frame, req.Config, hist)
	response.Success(c, gin.H{
		"frame_id":  frame.FrameID,
		"timestamp": frame.Timestamp,
		"commands":  cmds,
	})
}

// rebuildHistory reconstructs the hip trail a live session would have
// accumulated by the resolved frame: the trailing valid mid-hip positions
// of the frames before it, bounded by the history capacity. The current
// frame itself is appended by the hip path draw.
func rebuildHistory(stream *models.PoseStream, frameID int) *overlay.HipHistory {
	hist := overlay.NewHipHistory()
	for i := range stream.Frames {
		if stream.Frames[i].FrameID >= frameID {
			break
		}
		if kp, ok := stream.Frames[i].VisibleKeypoint(models.KeypointMidHip); ok {
			hist.Append(kp.Point())
		}
	}
	return hist
}
