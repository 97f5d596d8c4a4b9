package stream

import (
	"errors"
	"fmt"
)

// ErrProtocolViolation is the class of errors raised when a caller overlaps
// two operations of the same role on one stream. It is always a caller bug,
// reported immediately and distinct from a closed outcome.
var ErrProtocolViolation = errors.New("stream protocol violation")

var (
	// ErrReadPending reports a Read issued while another Read is pending.
	ErrReadPending = fmt.Errorf("%w: read already pending", ErrProtocolViolation)

	// ErrWriterPending reports a Write or Flush issued while another Write
	// or Flush is pending. Both operations occupy the single writer slot.
	ErrWriterPending = fmt.Errorf("%w: write or flush already pending", ErrProtocolViolation)
)
