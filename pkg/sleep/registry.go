package sleep

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// WorkerID identifies the goroutine or device driving a sequence of
// exchanges, e.g. an I2C bus path.
type WorkerID string

// Config holds estimator configuration applied to newly created Stats.
type Config struct {
	// Enabled turns on dynamic adjustment.
	Enabled bool

	// Multiplier scales every tuned sleep. Zero means DefaultMultiplier.
	Multiplier float64

	// CheckInterval is the number of calls between error-rate checks.
	// Zero means DefaultCheckInterval.
	CheckInterval int

	// Status places errno codes when classifying. Nil uses
	// status.Default().
	Status *status.Registry
}

// Registry hands out one Stats per worker. Only the map is guarded; each
// Stats belongs to the worker that requested it.
type Registry struct {
	mu     sync.Mutex
	config Config
	stats  map[WorkerID]*Stats
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		config: cfg,
		stats:  make(map[WorkerID]*Stats),
	}
}

// ForWorker returns the Stats for id, creating it on first use.
func (r *Registry) ForWorker(id WorkerID) *Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[id]
	if !ok {
		s = NewStats(r.config.Multiplier, r.config.Enabled)
		s.registry = r.config.Status
		if r.config.CheckInterval > 0 {
			s.CheckInterval = r.config.CheckInterval
		}
		r.stats[id] = s
	}
	return s
}

// SetEnabledAll enables or disables adjustment for existing and future
// workers.
func (r *Registry) SetEnabledAll(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config.Enabled = enabled
	for _, s := range r.stats {
		s.Enabled = enabled
	}
}

// Workers returns the known worker IDs in sorted order.
func (r *Registry) Workers() []WorkerID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]WorkerID, 0, len(r.stats))
	for id := range r.stats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Report writes every worker's Stats. It must not run concurrently with
// the workers themselves.
func (r *Registry) Report(w io.Writer) {
	for _, id := range r.Workers() {
		fmt.Fprintf(w, "Worker %s:\n", id)
		r.ForWorker(id).Report(w)
	}
}
