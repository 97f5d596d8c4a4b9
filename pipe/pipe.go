package pipe

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/streams/stream"
)

var _ stream.Stream = (*Pipe)(nil)

type state int

const (
	stateIdle state = iota
	stateReaderWaiting
	stateWriterWaiting
	stateClosed
)

// String returns a human-readable state name.
func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateReaderWaiting:
		return "reader_waiting"
	case stateWriterWaiting:
		return "writer_waiting"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type payloadKind int

const (
	payloadData payloadKind = iota
	payloadFlush
)

// Pipe is the four-state rendezvous stream. The zero value is not usable;
// create pipes with New.
type Pipe struct {
	mu    sync.Mutex
	state state

	// Populated iff state == stateReaderWaiting.
	readFn func(stream.ReadResult)

	// Populated iff state == stateWriterWaiting. view is set only for
	// payloadData.
	payload payloadKind
	view    stream.View
	writeFn func(stream.WriteResult)

	id     string
	logger *zap.Logger
}

// Option configures a Pipe.
type Option func(*Pipe)

// WithLogger attaches a structured logger. State transitions are logged at
// Debug and protocol violations at Warn, tagged with the pipe's ID.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipe) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates an idle pipe.
func New(opts ...Option) *Pipe {
	p := &Pipe{
		id:     uuid.NewString(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(zap.String("pipe", p.id))
	return p
}

// ID returns the pipe's identifier, as carried in its log fields.
func (p *Pipe) ID() string {
	return p.id
}

// Read requests the next chunk. If a writer is parked, the handshake
// completes within this call: the writer's payload is delivered to fn and
// then the writer's completion fires. Otherwise fn is parked until the
// writer arrives or the pipe closes.
func (p *Pipe) Read(fn func(stream.ReadResult)) error {
	p.mu.Lock()
	switch p.state {
	case stateIdle:
		p.state = stateReaderWaiting
		p.readFn = fn
		p.mu.Unlock()
		p.logger.Debug("reader parked")
		return nil

	case stateReaderWaiting:
		p.mu.Unlock()
		p.logger.Warn("overlapping read", zap.Error(stream.ErrReadPending))
		return stream.ErrReadPending

	case stateWriterWaiting:
		payload := p.payload
		v := p.view
		done := p.writeFn
		p.view = stream.View{}
		p.writeFn = nil
		p.state = stateIdle
		p.mu.Unlock()

		if payload == payloadData {
			p.logger.Debug("handshake", zap.String("payload", "data"), zap.Int("bytes", v.Len()))
			fn(stream.ReadResult{Kind: stream.ReadData, View: v})
			v.Expire()
		} else {
			p.logger.Debug("handshake", zap.String("payload", "flush"))
			fn(stream.ReadResult{Kind: stream.ReadFlushed})
		}
		done(stream.WriteResult{Kind: stream.WriteDone})
		return nil

	default: // stateClosed
		p.mu.Unlock()
		fn(stream.ReadResult{Kind: stream.ReadClosed})
		return nil
	}
}

// Write offers the viewed bytes. If a reader is parked, the bytes are
// delivered to it within this call, after which fn fires with WriteDone.
// Otherwise the view and fn are parked until the reader arrives or the pipe
// closes; the caller must not touch the underlying storage until fn fires.
func (p *Pipe) Write(v stream.View, fn func(stream.WriteResult)) error {
	p.mu.Lock()
	switch p.state {
	case stateIdle:
		p.state = stateWriterWaiting
		p.payload = payloadData
		p.view = v
		p.writeFn = fn
		p.mu.Unlock()
		p.logger.Debug("writer parked", zap.Int("bytes", v.Len()))
		return nil

	case stateReaderWaiting:
		deliver := p.readFn
		p.readFn = nil
		p.state = stateIdle
		p.mu.Unlock()

		p.logger.Debug("handshake", zap.String("payload", "data"), zap.Int("bytes", v.Len()))
		deliver(stream.ReadResult{Kind: stream.ReadData, View: v})
		v.Expire()
		fn(stream.WriteResult{Kind: stream.WriteDone})
		return nil

	case stateWriterWaiting:
		p.mu.Unlock()
		p.logger.Warn("overlapping write", zap.Error(stream.ErrWriterPending))
		return stream.ErrWriterPending

	default: // stateClosed
		p.mu.Unlock()
		fn(stream.WriteResult{Kind: stream.WriteClosed})
		return nil
	}
}

// Flush requests a checkpoint be forwarded without data. It occupies the
// same writer slot as Write: only one Write or Flush may be pending at a
// time.
func (p *Pipe) Flush(fn func(stream.WriteResult)) error {
	p.mu.Lock()
	switch p.state {
	case stateIdle:
		p.state = stateWriterWaiting
		p.payload = payloadFlush
		p.writeFn = fn
		p.mu.Unlock()
		p.logger.Debug("flush parked")
		return nil

	case stateReaderWaiting:
		deliver := p.readFn
		p.readFn = nil
		p.state = stateIdle
		p.mu.Unlock()

		p.logger.Debug("handshake", zap.String("payload", "flush"))
		deliver(stream.ReadResult{Kind: stream.ReadFlushed})
		fn(stream.WriteResult{Kind: stream.WriteDone})
		return nil

	case stateWriterWaiting:
		p.mu.Unlock()
		p.logger.Warn("overlapping flush", zap.Error(stream.ErrWriterPending))
		return stream.ErrWriterPending

	default: // stateClosed
		p.mu.Unlock()
		fn(stream.WriteResult{Kind: stream.WriteClosed})
		return nil
	}
}

// Close terminates the pipe. Whichever party is parked, if any, is resolved
// through its closed outcome exactly once. Closing a closed pipe is a
// no-op.
func (p *Pipe) Close() {
	p.mu.Lock()
	if p.state == stateClosed {
		p.mu.Unlock()
		return
	}
	from := p.state
	deliver := p.readFn
	done := p.writeFn
	p.readFn = nil
	p.writeFn = nil
	p.view = stream.View{}
	p.state = stateClosed
	p.mu.Unlock()

	p.logger.Debug("closed", zap.Stringer("from", from))

	// At most one of the two slots was populated.
	if deliver != nil {
		deliver(stream.ReadResult{Kind: stream.ReadClosed})
	}
	if done != nil {
		done(stream.WriteResult{Kind: stream.WriteClosed})
	}
}
