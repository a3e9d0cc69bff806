package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/betaview/betaview-backend/internal/models"
)

// MetricsRepository handles database operations for climb metrics records
type MetricsRepository struct {
	db *sql.DB
}

// NewMetricsRepository creates a new metrics repository
func NewMetricsRepository(db *sql.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// Save persists the metrics record for a stream, replacing any previous run
func (r *MetricsRepository) Save(m *models.ClimbMetrics) error {
	metricsJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}

	query := `
		INSERT INTO climb_metrics (stream_id, metrics_json)
		VALUES (?, ?)
		ON CONFLICT(stream_id) DO UPDATE SET
			metrics_json = excluded.metrics_json,
			created_at = CURRENT_TIMESTAMP
	`
	_, err = r.db.Exec(query, m.StreamID, string(metricsJSON))
	if err != nil {
		return fmt.Errorf("failed to insert metrics: %w", err)
	}
	return nil
}

// Get loads the metrics record for a stream
func (r *MetricsRepository) Get(streamID string) (*models.ClimbMetrics, error) {
	query := `
		SELECT metrics_json, created_at
		FROM climb_metrics
		WHERE stream_id = ?
	`

	var metricsJSON, createdAt string
	err := r.db.QueryRow(query, streamID).Scan(&metricsJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("metrics not found for stream: %s", streamID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}

	var m models.ClimbMetrics
	if err := json.Unmarshal([]byte(metricsJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}
	m.StreamID = streamID
	m.CreatedAt = createdAt
	return &m, nil
}
