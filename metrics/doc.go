// Package metrics provides Prometheus instrumentation for streams.
//
// Instrument wraps any stream.Stream in a middleware that preserves the
// contract exactly — same outcomes, same ordering, same errors — while a
// Collector counts chunks and bytes in each direction, forwarded flushes,
// closes, and protocol violations.
//
// The Collector also keeps a mutex-guarded snapshot of current values for
// direct inspection, so embedding services can expose the numbers on a JSON
// surface without scraping.
//
// Example Usage:
//
//	c := metrics.NewCollector(nil) // default Prometheus registerer
//	body := metrics.Instrument(pipe.New(), c)
package metrics
