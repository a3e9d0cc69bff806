package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/service"
	"github.com/betaview/betaview-backend/pkg/response"
)

// StreamHandler handles HTTP requests for pose streams and their metrics
type StreamHandler struct {
	service *service.StreamService
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(service *service.StreamService) *StreamHandler {
	return &StreamHandler{service: service}
}

// Ingest accepts a PoseStream document from the pose-extraction service
// POST /api/v1/streams
func (h *StreamHandler) Ingest(c *gin.Context) {
	var stream models.PoseStream
	if err := c.ShouldBindJSON(&stream); err != nil {
		response.BadRequest(c, "Invalid pose stream document")
		return
	}

	id, err := h.service.Ingest(&stream)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetStream returns stream metadata
// GET /api/v1/streams/:id
func (h *StreamHandler) GetStream(c *gin.Context) {
	info, err := h.service.GetInfo(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, info)
}

// ListStreams returns stream metadata newest-first
// GET /api/v1/streams
func (h *StreamHandler) ListStreams(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	streams, err := h.service.List(limit, offset)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"streams": streams,
		"limit":   limit,
		"offset":  offset,
	})
}

// DeleteStream removes a stream and its metrics
// DELETE /api/v1/streams/:id
func (h *StreamHandler) DeleteStream(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, gin.H{"message": "Stream deleted"})
}

// GetMetrics returns the aggregate metrics record for a stream
// GET /api/v1/streams/:id/metrics
func (h *StreamHandler) GetMetrics(c *gin.Context) {
	m, err := h.service.GetMetrics(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, m)
}

// Reanalyze recomputes the metrics record for a stored stream
// POST /api/v1/streams/:id/metrics
func (h *StreamHandler) Reanalyze(c *gin.Context) {
	m, err := h.service.Reanalyze(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, m)
}
