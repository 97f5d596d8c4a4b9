// Package stream defines the byte-stream contract used for body streaming.
//
// A Stream exposes four operations — Read, Write, Flush, Close — with a
// single-outcome completion model: each Read, Write, or Flush takes exactly
// one completion callback, and that callback is invoked exactly once with a
// tagged result describing which outcome occurred. Backpressure is explicit:
// a writer learns that the consumer has accepted a chunk only when its
// completion fires, and it must not prepare the next chunk before then.
//
// Outcomes:
//   - Read completes with ReadData (a borrowed view of bytes), ReadFlushed
//     (a checkpoint with no data yet; read again to continue), or ReadClosed
//     (the source is exhausted).
//   - Write and Flush complete with WriteDone (accepted) or WriteClosed
//     (the consuming side is gone).
//
// Views delivered through ReadData are borrowed: they are valid only for the
// duration of the delivering callback. A receiver that needs the bytes
// afterward must copy them before returning. With STREAMS_DEBUG enabled,
// access to a view after its callback has returned panics.
//
// Overlapping same-role operations are protocol violations, not stream
// conditions: a second Read while one is pending fails immediately with
// ErrReadPending, and a second Write or Flush while either is pending fails
// with ErrWriterPending. Both match ErrProtocolViolation via errors.Is, and
// neither disturbs the operation already pending.
//
// The package also provides read-only sources (Empty, Constant), combinators
// that drive a stream to a single value (ReadOneChunk, ReadAll), and the
// Future type those combinators resolve.
//
// Example Usage:
//
//	src := stream.Constant([]byte("hello"))
//	body, err := stream.ReadAll(src).Await(ctx)
package stream
