package stream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/streams/stream"
)

func TestFutureResolve(t *testing.T) {
	f := stream.NewFuture[int]()

	go f.Resolve(42)

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	select {
	case <-f.Done():
	default:
		t.Fatal("Done channel must be closed after resolution")
	}
}

func TestFutureFail(t *testing.T) {
	f := stream.NewFuture[int]()
	boom := errors.New("boom")

	f.Fail(boom)

	_, err := f.Await(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestFutureResolveTwicePanics(t *testing.T) {
	f := stream.NewFuture[string]()
	f.Resolve("first")

	assert.Panics(t, func() { f.Resolve("second") })
	assert.Panics(t, func() { f.Fail(errors.New("late")) })
}

func TestFutureAwaitCancellation(t *testing.T) {
	f := stream.NewFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The future itself is untouched and can still resolve.
	f.Resolve(7)
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
