package stream

// ReadKind tags the outcome of a Read.
type ReadKind int

const (
	// ReadData indicates bytes were delivered in the result's View.
	ReadData ReadKind = iota
	// ReadFlushed indicates a checkpoint with no data yet; the caller is
	// expected to Read again to continue.
	ReadFlushed
	// ReadClosed indicates the source is exhausted.
	ReadClosed
)

// String returns a human-readable outcome name.
func (k ReadKind) String() string {
	switch k {
	case ReadData:
		return "data"
	case ReadFlushed:
		return "flushed"
	case ReadClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// WriteKind tags the outcome of a Write or Flush.
type WriteKind int

const (
	// WriteDone indicates the consumer accepted the chunk or checkpoint.
	WriteDone WriteKind = iota
	// WriteClosed indicates the consuming side is closed.
	WriteClosed
)

// String returns a human-readable outcome name.
func (k WriteKind) String() string {
	switch k {
	case WriteDone:
		return "done"
	case WriteClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ReadResult is the tagged outcome of a Read. View is populated only when
// Kind is ReadData, and only for the duration of the delivering callback.
type ReadResult struct {
	Kind ReadKind
	View View
}

// WriteResult is the tagged outcome of a Write or Flush.
type WriteResult struct {
	Kind WriteKind
}

// Stream is the four-operation byte-stream contract. Each of Read, Write,
// and Flush invokes its completion callback exactly once with exactly one
// outcome; completion may happen synchronously within the call or later,
// within the call stack of the operation that completes the handshake.
//
// A returned error means the operation was rejected outright — the callback
// will never fire. The only rejection in this package is a protocol
// violation (see ErrReadPending, ErrWriterPending).
type Stream interface {
	// Read requests the next chunk.
	Read(fn func(ReadResult)) error

	// Write offers the viewed bytes for output. The caller must not mutate
	// or reuse the underlying storage until the callback fires.
	Write(v View, fn func(WriteResult)) error

	// Flush requests a checkpoint be forwarded without new data. It
	// occupies the same writer role as Write.
	Flush(fn func(WriteResult)) error

	// Close terminates the stream. It is idempotent, has no completion of
	// its own, and resolves any pending operation through its closed
	// outcome.
	Close()
}
