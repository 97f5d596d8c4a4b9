package stream

import (
	"sync/atomic"

	"github.com/GriffinCanCode/AgentOS/streams/internal/config"
)

var debugChecks atomic.Bool

func init() {
	debugChecks.Store(config.LoadOrDefault().Debug.Checks)
}

// SetDebugChecks toggles borrowed-view retention checks at runtime. The
// initial value comes from the STREAMS_DEBUG environment variable.
func SetDebugChecks(on bool) {
	debugChecks.Store(on)
}

// DebugChecksEnabled reports whether retention checks are active.
func DebugChecksEnabled() bool {
	return debugChecks.Load()
}

// View is a borrowed window into byte storage. A view delivered to a
// callback is valid only until that callback returns; the owner guarantees
// the storage is untouched during that window and nothing afterward. Copy
// the bytes out before returning if they must outlive the call.
//
// The zero View is empty and always valid.
type View struct {
	b     []byte
	guard *viewGuard
}

// viewGuard tracks expiry for debug retention checks. It is shared by all
// copies of one View value.
type viewGuard struct {
	expired atomic.Bool
}

// NewView wraps p in a borrowed view. The caller retains ownership of p.
func NewView(p []byte) View {
	v := View{b: p}
	if debugChecks.Load() {
		v.guard = &viewGuard{}
	}
	return v
}

// ViewOf wraps the window [off, off+n) of storage in a borrowed view.
func ViewOf(storage []byte, off, n int) View {
	return NewView(storage[off : off+n])
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.b)
}

// Bytes returns the borrowed bytes. The slice aliases the owner's storage
// and must not be retained past the delivering callback.
func (v View) Bytes() []byte {
	v.check()
	return v.b
}

// Copy returns an owned copy of the viewed bytes.
func (v View) Copy() []byte {
	v.check()
	out := make([]byte, len(v.b))
	copy(out, v.b)
	return out
}

// Expire marks the view invalid. Stream implementations call it after the
// delivering callback returns; it has no effect unless debug checks were
// enabled when the view was created.
func (v View) Expire() {
	if v.guard != nil {
		v.guard.expired.Store(true)
	}
}

func (v View) check() {
	if v.guard != nil && v.guard.expired.Load() {
		panic("stream: view retained past its delivering callback")
	}
}
