package stream

import "sync"

var (
	_ Stream = emptySource{}
	_ Stream = (*constantSource)(nil)
)

// Empty returns a read-only stream that is already exhausted: every Read
// completes with ReadClosed. Write and Flush are unsupported in this
// direction and complete immediately with WriteClosed.
func Empty() Stream {
	return emptySource{}
}

type emptySource struct{}

func (emptySource) Read(fn func(ReadResult)) error {
	fn(ReadResult{Kind: ReadClosed})
	return nil
}

func (emptySource) Write(_ View, fn func(WriteResult)) error {
	fn(WriteResult{Kind: WriteClosed})
	return nil
}

func (emptySource) Flush(fn func(WriteResult)) error {
	fn(WriteResult{Kind: WriteClosed})
	return nil
}

func (emptySource) Close() {}

// Constant returns a read-only stream over an already-materialized byte
// sequence. The first Read delivers the whole sequence in one chunk and
// drops the internal reference so the storage can be reclaimed; every later
// Read completes with ReadClosed. An empty sequence behaves as Empty.
//
// The stream borrows b; the caller must not mutate it before the first Read
// completes.
func Constant(b []byte) Stream {
	if len(b) == 0 {
		return emptySource{}
	}
	return &constantSource{data: b}
}

type constantSource struct {
	mu   sync.Mutex
	data []byte
}

func (c *constantSource) Read(fn func(ReadResult)) error {
	c.mu.Lock()
	data := c.data
	c.data = nil
	c.mu.Unlock()

	if data == nil {
		fn(ReadResult{Kind: ReadClosed})
		return nil
	}

	v := NewView(data)
	fn(ReadResult{Kind: ReadData, View: v})
	v.Expire()
	return nil
}

func (c *constantSource) Write(_ View, fn func(WriteResult)) error {
	fn(WriteResult{Kind: WriteClosed})
	return nil
}

func (c *constantSource) Flush(fn func(WriteResult)) error {
	fn(WriteResult{Kind: WriteClosed})
	return nil
}

func (c *constantSource) Close() {
	c.mu.Lock()
	c.data = nil
	c.mu.Unlock()
}
