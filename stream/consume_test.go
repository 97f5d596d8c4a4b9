package stream_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/streams/pipe"
	"github.com/GriffinCanCode/AgentOS/streams/stream"
)

// countingStream counts Read calls on the way through.
type countingStream struct {
	stream.Stream
	reads int
}

func (c *countingStream) Read(fn func(stream.ReadResult)) error {
	c.reads++
	return c.Stream.Read(fn)
}

// scriptedStream plays back a fixed sequence of read outcomes.
type scriptedStream struct {
	stream.Stream
	script []stream.ReadResult
}

func (s *scriptedStream) Read(fn func(stream.ReadResult)) error {
	if len(s.script) == 0 {
		fn(stream.ReadResult{Kind: stream.ReadClosed})
		return nil
	}
	next := s.script[0]
	s.script = s.script[1:]
	fn(next)
	return nil
}

func TestReadOneChunkData(t *testing.T) {
	data := []byte("one chunk")
	chunk, err := stream.ReadOneChunk(stream.Constant(data)).Await(context.Background())

	require.NoError(t, err)
	assert.False(t, chunk.EOF)
	assert.Equal(t, data, chunk.Data)
}

func TestReadOneChunkEOF(t *testing.T) {
	chunk, err := stream.ReadOneChunk(stream.Empty()).Await(context.Background())

	require.NoError(t, err)
	assert.True(t, chunk.EOF)
	assert.Nil(t, chunk.Data)
}

func TestReadOneChunkSkipsFlushes(t *testing.T) {
	s := &scriptedStream{
		Stream: stream.Empty(),
		script: []stream.ReadResult{
			{Kind: stream.ReadFlushed},
			{Kind: stream.ReadFlushed},
			{Kind: stream.ReadData, View: stream.NewView([]byte("after flushes"))},
		},
	}

	chunk, err := stream.ReadOneChunk(s).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("after flushes"), chunk.Data)
}

func TestReadOneChunkOwnsItsCopy(t *testing.T) {
	storage := []byte("mutable")
	chunk, err := stream.ReadOneChunk(stream.Constant(storage)).Await(context.Background())
	require.NoError(t, err)

	storage[0] = 'X'
	assert.Equal(t, []byte("mutable"), chunk.Data)
}

func TestReadAllConstant(t *testing.T) {
	data := []byte("the full content")
	got, err := stream.ReadAll(stream.Constant(data)).Await(context.Background())

	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadAllEmptyUsesExactlyOneRead(t *testing.T) {
	s := &countingStream{Stream: stream.Empty()}

	got, err := stream.ReadAll(s).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{}, got)
	assert.Equal(t, 1, s.reads)
}

func TestReadAllGrowsPastInitialCapacity(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 8192) // 128 KiB
	got, err := stream.ReadAll(stream.Constant(data)).Await(context.Background())

	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadAllAcrossPipe(t *testing.T) {
	p := pipe.New()
	chunks := [][]byte{
		bytes.Repeat([]byte("a"), 3000),
		bytes.Repeat([]byte("b"), 3000),
		bytes.Repeat([]byte("c"), 3000),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, chunk := range chunks {
			done := make(chan struct{})
			if !assert.NoError(t, p.Write(stream.NewView(chunk), func(stream.WriteResult) {
				close(done)
			})) {
				return
			}
			<-done
		}
		p.Close()
	}()

	got, err := stream.ReadAll(p).Await(context.Background())
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, bytes.Join(chunks, nil), got)
}

func TestReadAllIgnoresFlushes(t *testing.T) {
	s := &scriptedStream{
		Stream: stream.Empty(),
		script: []stream.ReadResult{
			{Kind: stream.ReadData, View: stream.NewView([]byte("first"))},
			{Kind: stream.ReadFlushed},
			{Kind: stream.ReadData, View: stream.NewView([]byte("second"))},
		},
	}

	got, err := stream.ReadAll(s).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("firstsecond"), got)
}

func TestReadAllFailsOnProtocolViolation(t *testing.T) {
	p := pipe.New()

	// Occupy the reader slot directly, then let the combinator collide.
	require.NoError(t, p.Read(func(stream.ReadResult) {}))

	_, err := stream.ReadAll(p).Await(context.Background())
	require.ErrorIs(t, err, stream.ErrProtocolViolation)
	p.Close()
}

func TestAwaitHonorsContext(t *testing.T) {
	p := pipe.New()
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := stream.ReadAll(p).Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
