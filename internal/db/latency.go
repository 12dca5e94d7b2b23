package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/freedaiy/intake/internal/observability"
)

// latencyWindowSize bounds the samples kept per query.
const latencyWindowSize = 512

// LatencyStats summarizes recent latencies of one named query.
type LatencyStats struct {
	Name  string
	Count int
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

// latencyWindow is a fixed-size ring of the most recent samples.
type latencyWindow struct {
	samples [latencyWindowSize]time.Duration
	next    int
	filled  bool
}

func (w *latencyWindow) add(d time.Duration) {
	w.samples[w.next] = d
	w.next = (w.next + 1) % latencyWindowSize
	if w.next == 0 {
		w.filled = true
	}
}

func (w *latencyWindow) sorted() []time.Duration {
	n := w.next
	if w.filled {
		n = latencyWindowSize
	}
	out := make([]time.Duration, n)
	copy(out, w.samples[:n])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type queryLatency struct {
	mu      sync.Mutex
	windows map[string]*latencyWindow
}

func newQueryLatency() *queryLatency {
	return &queryLatency{windows: map[string]*latencyWindow{}}
}

func (q *queryLatency) record(name string, d time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	w, ok := q.windows[name]
	if !ok {
		w = &latencyWindow{}
		q.windows[name] = w
	}
	w.add(d)
}

// stats orders queries slowest p95 first.
func (q *queryLatency) stats() []LatencyStats {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]LatencyStats, 0, len(q.windows))
	for name, w := range q.windows {
		samples := w.sorted()
		if len(samples) == 0 {
			continue
		}
		last := len(samples) - 1
		out = append(out, LatencyStats{
			Name:  name,
			Count: len(samples),
			P50:   samples[last/2],
			P95:   samples[last*95/100],
			Max:   samples[last],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].P95 != out[j].P95 {
			return out[i].P95 > out[j].P95
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// observe runs one statement under a db span and records its latency.
func (c *Database) observe(ctx context.Context, name, operation string, run func(context.Context) error) error {
	ctx, span := observability.StartDBSpan(ctx, string(c.dialect), name, operation)
	defer span.End()

	start := time.Now()
	err := run(ctx)
	if c.latency != nil {
		c.latency.record(name, time.Since(start))
	}
	span.RecordError(err)
	return err
}

// QueryLatencyStats returns current per-query latency distribution samples.
func (c *Database) QueryLatencyStats() []LatencyStats {
	if c == nil || c.latency == nil {
		return nil
	}
	return c.latency.stats()
}
