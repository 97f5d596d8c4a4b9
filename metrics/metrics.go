package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for instrumented streams.
type Collector struct {
	// Transfer metrics
	ChunksRead    prometheus.Counter
	BytesRead     prometheus.Counter
	ChunksWritten prometheus.Counter
	BytesWritten  prometheus.Counter
	ChunkSize     prometheus.Histogram

	// Signal metrics
	Flushes    prometheus.Counter
	Closes     prometheus.Counter
	Violations prometheus.Counter

	// Snapshot for JSON API - track current values
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values for JSON API
type Snapshot struct {
	ChunksRead    int64
	BytesRead     int64
	ChunksWritten int64
	BytesWritten  int64
	Flushes       int64
	Closes        int64
	Violations    int64
}

// NewCollector creates a metrics collector registered with reg. A nil reg
// uses the default Prometheus registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		ChunksRead: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_chunks_read_total",
				Help: "Total number of chunks delivered to readers",
			},
		),
		BytesRead: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_bytes_read_total",
				Help: "Total bytes delivered to readers",
			},
		),
		ChunksWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_chunks_written_total",
				Help: "Total number of chunks accepted from writers",
			},
		),
		BytesWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_bytes_written_total",
				Help: "Total bytes accepted from writers",
			},
		),
		ChunkSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "streams_chunk_size_bytes",
				Help:    "Size of chunks moved through instrumented streams",
				Buckets: []float64{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576},
			},
		),
		Flushes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_flushes_total",
				Help: "Total number of flush checkpoints forwarded",
			},
		),
		Closes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_closes_total",
				Help: "Total number of close signals observed",
			},
		),
		Violations: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "streams_protocol_violations_total",
				Help: "Total number of protocol violations rejected",
			},
		),
	}
}

// GetSnapshot returns current metric values.
func (c *Collector) GetSnapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

func (c *Collector) recordRead(bytes int) {
	c.ChunksRead.Inc()
	c.BytesRead.Add(float64(bytes))
	c.ChunkSize.Observe(float64(bytes))

	c.mu.Lock()
	c.snapshot.ChunksRead++
	c.snapshot.BytesRead += int64(bytes)
	c.mu.Unlock()
}

func (c *Collector) recordWrite(bytes int) {
	c.ChunksWritten.Inc()
	c.BytesWritten.Add(float64(bytes))

	c.mu.Lock()
	c.snapshot.ChunksWritten++
	c.snapshot.BytesWritten += int64(bytes)
	c.mu.Unlock()
}

func (c *Collector) recordFlush() {
	c.Flushes.Inc()

	c.mu.Lock()
	c.snapshot.Flushes++
	c.mu.Unlock()
}

func (c *Collector) recordClose() {
	c.Closes.Inc()

	c.mu.Lock()
	c.snapshot.Closes++
	c.mu.Unlock()
}

func (c *Collector) recordViolation() {
	c.Violations.Inc()

	c.mu.Lock()
	c.snapshot.Violations++
	c.mu.Unlock()
}
