package metrics

import (
	"errors"

	"github.com/GriffinCanCode/AgentOS/streams/stream"
)

var _ stream.Stream = (*instrumented)(nil)

// Instrument wraps s so every operation is counted in c. The wrapper is
// behaviorally transparent: outcomes, ordering, and errors pass through
// unchanged.
func Instrument(s stream.Stream, c *Collector) stream.Stream {
	return &instrumented{inner: s, collector: c}
}

type instrumented struct {
	inner     stream.Stream
	collector *Collector
}

func (m *instrumented) Read(fn func(stream.ReadResult)) error {
	err := m.inner.Read(func(r stream.ReadResult) {
		switch r.Kind {
		case stream.ReadData:
			m.collector.recordRead(r.View.Len())
		case stream.ReadFlushed:
			m.collector.recordFlush()
		case stream.ReadClosed:
			m.collector.recordClose()
		}
		fn(r)
	})
	if errors.Is(err, stream.ErrProtocolViolation) {
		m.collector.recordViolation()
	}
	return err
}

func (m *instrumented) Write(v stream.View, fn func(stream.WriteResult)) error {
	size := v.Len()
	err := m.inner.Write(v, func(w stream.WriteResult) {
		switch w.Kind {
		case stream.WriteDone:
			m.collector.recordWrite(size)
		case stream.WriteClosed:
			m.collector.recordClose()
		}
		fn(w)
	})
	if errors.Is(err, stream.ErrProtocolViolation) {
		m.collector.recordViolation()
	}
	return err
}

func (m *instrumented) Flush(fn func(stream.WriteResult)) error {
	err := m.inner.Flush(func(w stream.WriteResult) {
		if w.Kind == stream.WriteClosed {
			m.collector.recordClose()
		}
		fn(w)
	})
	if errors.Is(err, stream.ErrProtocolViolation) {
		m.collector.recordViolation()
	}
	return err
}

func (m *instrumented) Close() {
	m.inner.Close()
	m.collector.recordClose()
}
