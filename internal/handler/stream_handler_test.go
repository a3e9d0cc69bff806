package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/betaview/betaview-backend/internal/database"
	"github.com/betaview/betaview-backend/internal/models"
	"github.com/betaview/betaview-backend/internal/repository"
	"github.com/betaview/betaview-backend/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	svc := service.NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMetricsRepository(db),
	)
	streams := NewStreamHandler(svc)
	overlays := NewOverlayHandler(svc)

	r := gin.New()
	r.POST("/streams", streams.Ingest)
	r.GET("/streams/:id", streams.GetStream)
	r.GET("/streams", streams.ListStreams)
	r.DELETE("/streams/:id", streams.DeleteStream)
	r.GET("/streams/:id/metrics", streams.GetMetrics)
	r.POST("/streams/:id/metrics", streams.Reanalyze)
	r.GET("/streams/:id/frame", overlays.ResolveFrame)
	r.POST("/streams/:id/overlays", overlays.Preview)
	return r
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func ingestBody() *models.PoseStream {
	frames := make([]models.PoseFrame, 3)
	for i := range frames {
		frames[i] = models.PoseFrame{
			FrameID:   i,
			Timestamp: float64(i) / 30,
			Keypoints: map[string]models.Keypoint{
				models.KeypointLeftHip:  {X: float64(i) * 5, Y: 100, Visibility: 0.9},
				models.KeypointRightHip: {X: float64(i)*5 + 10, Y: 100, Visibility: 0.9},
			},
		}
	}
	return &models.PoseStream{FPS: 30, Width: 640, Height: 480, Frames: frames}
}

func ingest(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/streams", ingestBody())
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.ID)
	return data.ID
}

func TestIngestAndGetStream(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	w, env := doJSON(t, r, http.MethodGet, "/streams/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var info repository.StreamInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, id, info.ID)
	assert.Equal(t, 3, info.FrameCount)
}

func TestIngestRejectsInvalidStream(t *testing.T) {
	r := setupRouter(t)

	bad := ingestBody()
	bad.FPS = 0
	w, _ := doJSON(t, r, http.MethodPost, "/streams", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/streams", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsComputedOnIngest(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/streams/%s/metrics", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var m models.ClimbMetrics
	require.NoError(t, json.Unmarshal(env.Data, &m))
	assert.Equal(t, 3, m.PathSamples) // mid_hip derived from the hips on ingest
	assert.InDelta(t, 1.0, m.PathEfficiency, 1e-9)

	w, env = doJSON(t, r, http.MethodGet, "/streams/unknown/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code) // envelope mirrors the status
}

func TestReanalyze(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	w, env := doJSON(t, r, http.MethodPost, fmt.Sprintf("/streams/%s/metrics", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var m models.ClimbMetrics
	require.NoError(t, json.Unmarshal(env.Data, &m))
	assert.Equal(t, id, m.StreamID)
}

func TestDeleteStream(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	w, _ := doJSON(t, r, http.MethodDelete, "/streams/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/streams/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/streams/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveFrame(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/streams/%s/frame?t=0.05", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var frame models.PoseFrame
	require.NoError(t, json.Unmarshal(env.Data, &frame))
	assert.Equal(t, 1, frame.FrameID) // floor(0.05 * 30)

	// Past the end clamps to the last frame
	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/streams/%s/frame?t=99", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &frame))
	assert.Equal(t, 2, frame.FrameID)

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/streams/%s/frame?t=abc", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverlayPreview(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	body := PreviewRequest{
		Config: models.OverlayConfig{Skeleton: true, HipPath: true},
		Width:  1280,
		Height: 720,
	}
	w, env := doJSON(t, r, http.MethodPost, fmt.Sprintf("/streams/%s/overlays?t=0.07", id), body)
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		FrameID  int `json:"frame_id"`
		Commands []struct {
			Op string `json:"op"`
		} `json:"commands"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.FrameID)
	require.NotEmpty(t, data.Commands)
	assert.Equal(t, "clear", data.Commands[0].Op)
	// hip trail rebuilt from the two preceding frames plus the current one
	assert.Equal(t, "polyline", data.Commands[len(data.Commands)-1].Op)
}

func TestOverlayPreviewValidation(t *testing.T) {
	r := setupRouter(t)
	id := ingest(t, r)

	// Missing display size
	w, _ := doJSON(t, r, http.MethodPost, fmt.Sprintf("/streams/%s/overlays?t=0", id), gin.H{
		"config": models.OverlayConfig{Skeleton: true},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/streams/unknown/overlays?t=0", PreviewRequest{
		Width: 100, Height: 100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
