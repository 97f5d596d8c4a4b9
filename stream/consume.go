package stream

// initialCapacity is the starting size of a ReadAll accumulation buffer.
// Capacity doubles whenever the accumulated length would exceed it.
const initialCapacity = 4096

// Chunk is the result of ReadOneChunk. EOF reports exhaustion; otherwise
// Data holds an owned copy of the delivered bytes.
type Chunk struct {
	Data []byte
	EOF  bool
}

// ReadOneChunk drives one logical chunk out of s. The future resolves with
// an owned copy of the next chunk, or with EOF when the stream closes first.
// Flush checkpoints are consumed transparently: the combinator reads again
// and they never surface as a value.
//
// A protocol violation on the underlying stream fails the future.
func ReadOneChunk(s Stream) *Future[Chunk] {
	f := NewFuture[Chunk]()
	readChunkInto(s, f)
	return f
}

func readChunkInto(s Stream, f *Future[Chunk]) {
	err := s.Read(func(r ReadResult) {
		switch r.Kind {
		case ReadData:
			f.Resolve(Chunk{Data: r.View.Copy()})
		case ReadFlushed:
			readChunkInto(s, f)
		case ReadClosed:
			f.Resolve(Chunk{EOF: true})
		}
	})
	if err != nil {
		f.Fail(err)
	}
}

// ReadAll drains s to exhaustion, concatenating every delivered chunk. The
// future resolves with the full content once the stream closes. Flush
// checkpoints trigger another read and leave the accumulated output
// untouched.
//
// A protocol violation on the underlying stream fails the future.
func ReadAll(s Stream) *Future[[]byte] {
	f := NewFuture[[]byte]()
	acc := &accumulator{}
	readAllInto(s, acc, f)
	return f
}

func readAllInto(s Stream, acc *accumulator, f *Future[[]byte]) {
	err := s.Read(func(r ReadResult) {
		switch r.Kind {
		case ReadData:
			acc.write(r.View.Bytes())
			readAllInto(s, acc, f)
		case ReadFlushed:
			readAllInto(s, acc, f)
		case ReadClosed:
			f.Resolve(acc.bytes())
		}
	})
	if err != nil {
		f.Fail(err)
	}
}

// accumulator grows by doubling from initialCapacity, copying delivered
// bytes into owned storage as they arrive.
type accumulator struct {
	buf []byte
}

func (a *accumulator) write(p []byte) {
	if a.buf == nil {
		a.buf = make([]byte, 0, initialCapacity)
	}
	need := len(a.buf) + len(p)
	if need > cap(a.buf) {
		grown := cap(a.buf)
		for grown < need {
			grown *= 2
		}
		next := make([]byte, len(a.buf), grown)
		copy(next, a.buf)
		a.buf = next
	}
	a.buf = append(a.buf, p...)
}

func (a *accumulator) bytes() []byte {
	if a.buf == nil {
		return []byte{}
	}
	return a.buf
}
