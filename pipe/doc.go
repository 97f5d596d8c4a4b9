// Package pipe provides the rendezvous primitive connecting exactly one
// reader and one writer with no queuing or buffering.
//
// A Pipe holds one of four states — idle, reader waiting, writer waiting,
// closed — and every transition is driven synchronously by a call to Read,
// Write, Flush, or Close. Whichever party arrives first parks its callback
// in the pipe; the party arriving second completes the handshake inside its
// own call stack. There is no background execution.
//
// Guarantees:
//   - Exactly one outcome callback fires, exactly once, per operation.
//   - On a handshake, the reader's outcome fires strictly before the
//     writer's. A writer may treat its own completion as proof the consumer
//     already accepted the previous chunk — the basis for backpressure.
//   - Stored callbacks and buffer views are cleared before invocation, so
//     large buffers are released promptly and a callback may immediately
//     issue the next operation on the same pipe.
//   - Close is idempotent and resolves any pending operation through its
//     closed outcome; closed is terminal.
//
// A second Read while one is pending, or a second Write/Flush while either
// is pending, is a protocol violation: the call fails immediately with
// stream.ErrReadPending or stream.ErrWriterPending and the pending
// operation is left undisturbed.
//
// State transitions are serialized by a mutex, so the two parties may live
// on different goroutines. Views still transfer ownership for the duration
// of the delivering callback only.
//
// No timeouts are built in. A caller wanting one races an external timer
// against the pipe and calls Close when it elapses.
//
// Example Usage:
//
//	p := pipe.New()
//	go func() {
//	    p.Write(stream.NewView(chunk), func(w stream.WriteResult) {
//	        // consumer accepted chunk; prepare the next one
//	    })
//	}()
//	body, err := stream.ReadAll(p).Await(ctx)
package pipe
