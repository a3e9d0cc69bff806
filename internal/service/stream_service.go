package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/betaview/betaview-backend/internal/analysis"
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/pose"
	"github.com/betaview/betaview-backend/internal/repository"
)

// StreamService handles pose stream ingestion and batch analysis. Metrics
// run once per ingested stream, off the rendering path.
type StreamService struct {
	streams *repository.StreamRepository
	metrics *repository.MetricsRepository
	engine  *analysis.Engine
}

// NewStreamService creates a new stream service
func NewStreamService(streams *repository.StreamRepository, metrics *repository.MetricsRepository) *StreamService {
	return &StreamService{
		streams: streams,
		metrics: metrics,
		engine:  analysis.NewEngine(),
	}
}

// Ingest validates and persists a pose stream document delivered by the
// pose-extraction service, then computes and persists its metrics record.
// Returns the stored stream id.
func (s *StreamService) Ingest(stream *models.PoseStream) (string, error) {
	if err := pose.Normalize(stream); err != nil {
		return "", fmt.Errorf("invalid pose stream: %w", err)
	}

	stream.ID = uuid.NewString()
	if err := s.streams.Save(stream); err != nil {
		return "", err
	}
	log.Printf("[StreamService] Ingested stream %s (%d frames at %.1f fps)",
		stream.ID, stream.FrameCount(), stream.FPS)

	m, err := s.engine.Run(stream)
	if err != nil {
		return "", err
	}
	if err := s.metrics.Save(m); err != nil {
		return "", err
	}

	return stream.ID, nil
}

// GetStream loads a complete stream including frames
func (s *StreamService) GetStream(id string) (*models.PoseStream, error) {
	return s.streams.Get(id)
}

// GetInfo loads stream metadata
func (s *StreamService) GetInfo(id string) (*repository.StreamInfo, error) {
	return s.streams.GetInfo(id)
}

// List returns stream metadata newest-first
func (s *StreamService) List(limit, offset int) ([]repository.StreamInfo, error) {
	return s.streams.List(limit, offset)
}

// Delete removes a stream and its metrics
func (s *StreamService) Delete(id string) error {
	return s.streams.Delete(id)
}

// GetMetrics loads the metrics record for a stream
func (s *StreamService) GetMetrics(streamID string) (*models.ClimbMetrics, error) {
	return s.metrics.Get(streamID)
}

// Reanalyze recomputes and replaces the metrics record for a stored stream
func (s *StreamService) Reanalyze(streamID string) (*models.ClimbMetrics, error) {
	stream, err := s.streams.Get(streamID)
	if err != nil {
		return nil, err
	}

	m, err := s.engine.Run(stream)
	if err != nil {
		return nil, err
	}
	if err := s.metrics.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}
