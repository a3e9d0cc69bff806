package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/betaview/betaview-backend/internal/models"
)

// StreamRepository handles database operations for pose streams. Stream
// metadata lives in columns; the frame sequence is stored as a JSON blob
// since it is only ever read back whole.
type StreamRepository struct {
	db *sql.DB
}

// NewStreamRepository creates a new stream repository
func NewStreamRepository(db *sql.DB) *StreamRepository {
	return &StreamRepository{db: db}
}

// Save persists a pose stream
func (r *StreamRepository) Save(s *models.PoseStream) error {
	framesJSON, err := json.Marshal(s.Frames)
	if err != nil {
		return fmt.Errorf("failed to encode frames: %w", err)
	}

	query := `
		INSERT INTO pose_streams (id, fps, width, height, frame_count, duration_s, frames_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, s.ID, s.FPS, s.Width, s.Height, s.FrameCount(), s.Duration(), string(framesJSON))
	if err != nil {
		return fmt.Errorf("failed to insert pose stream: %w", err)
	}
	return nil
}

// Get loads a complete pose stream including frames
func (r *StreamRepository) Get(id string) (*models.PoseStream, error) {
	query := `
		SELECT id, fps, width, height, frames_json
		FROM pose_streams
		WHERE id = ?
	`

	var s models.PoseStream
	var framesJSON string
	err := r.db.QueryRow(query, id).Scan(&s.ID, &s.FPS, &s.Width, &s.Height, &framesJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pose stream not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pose stream: %w", err)
	}

	if err := json.Unmarshal([]byte(framesJSON), &s.Frames); err != nil {
		return nil, fmt.Errorf("failed to decode frames: %w", err)
	}
	return &s, nil
}

// StreamInfo is the stored metadata of a stream, without frames
type StreamInfo struct {
	ID         string  `json:"id"`
	FPS        float64 `json:"fps"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FrameCount int     `json:"frame_count"`
	Duration   float64 `json:"duration_s"`
	CreatedAt  string  `json:"created_at"`
}

// GetInfo loads stream metadata without the frame blob
func (r *StreamRepository) GetInfo(id string) (*StreamInfo, error) {
	query := `
		SELECT id, fps, width, height, frame_count, duration_s, created_at
		FROM pose_streams
		WHERE id = ?
	`

	var info StreamInfo
	err := r.db.QueryRow(query, id).Scan(
		&info.ID, &info.FPS, &info.Width, &info.Height,
		&info.FrameCount, &info.Duration, &info.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pose stream not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pose stream info: %w", err)
	}
	return &info, nil
}

// List returns stream metadata newest-first
func (r *StreamRepository) List(limit, offset int) ([]StreamInfo, error) {
	query := `
		SELECT id, fps, width, height, frame_count, duration_s, created_at
		FROM pose_streams
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pose streams: %w", err)
	}
	defer rows.Close()

	var infos []StreamInfo
	for rows.Next() {
		var info StreamInfo
		if err := rows.Scan(&info.ID, &info.FPS, &info.Width, &info.Height,
			&info.FrameCount, &info.Duration, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pose stream info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a stream and, via cascade, its metrics
func (r *StreamRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM pose_streams WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete pose stream: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pose stream not found: %s", id)
	}
	return nil
}
