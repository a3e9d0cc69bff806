package analysis

import (
	"fmt"
	"log"
	"sort"

	"github.com/betaview/betaview-backend/internal/models"
)

// Analyzer is the interface all metric analyzers implement. Each analyzer
// computes one group of technique metrics over a complete PoseStream and
// writes its results into the shared metrics record. Analyzers are pure:
// they never mutate the stream and hold no state between runs.
type Analyzer interface {
	// Analyze computes the analyzer's metrics over the full stream
	Analyze(stream *models.PoseStream, m *models.ClimbMetrics)

	// Name returns the name of the analyzer
	Name() string
}

// registry maps analyzer names to instances
var registry = make(map[string]Analyzer)

// Register registers an analyzer under its name
func Register(a Analyzer) {
	registry[a.Name()] = a
}

// RegisteredNames returns the registered analyzer names in sorted order
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Engine runs every registered analyzer over a stream and merges the
// results into a single metrics record. It executes once per stream, off
// the rendering path, and may scan the entire frame sequence.
type Engine struct{}

// NewEngine creates a new metrics engine
func NewEngine() *Engine {
	return &Engine{}
}

// Run computes all registered metrics for a stream. Frames lacking the
// keypoints an analyzer needs are skipped by that analyzer; the affected
// metric reports the size of the valid subset it used instead of failing.
func (e *Engine) Run(stream *models.PoseStream) (*models.ClimbMetrics, error) {
	if stream == nil {
		return nil, fmt.Errorf("nil pose stream")
	}

	m := &models.ClimbMetrics{StreamID: stream.ID}
	for _, name := range RegisteredNames() {
		registry[name].Analyze(stream, m)
	}

	log.Printf("[MetricsEngine] Analyzed stream %s (%d frames, %d analyzers)",
		stream.ID, stream.FrameCount(), len(registry))

	return m, nil
}
