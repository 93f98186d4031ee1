package superbuilder

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a command runs before a successful Connect.
	ErrNotInitialized = errors.New("client not initialized")

	// ErrConnection is returned when dialing the middleware fails. The
	// underlying cause is logged but never surfaced to the UI.
	ErrConnection = errors.New("failed to connect to middleware")
)

// RPCError reports a failed call on an established connection.
type RPCError struct {
	Op  string
	Err error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// StreamError reports an error signaled by a server stream mid-flight.
// StopErr is set when the cooperative stop call that followed also failed.
type StreamError struct {
	Op      string
	Err     error
	StopErr error
}

func (e *StreamError) Error() string {
	if e.StopErr != nil {
		return fmt.Sprintf("%s stream error: %v (stop failed: %v)", e.Op, e.Err, e.StopErr)
	}
	return fmt.Sprintf("%s stream error: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() []error {
	if e.StopErr != nil {
		return []error{e.Err, e.StopErr}
	}
	return []error{e.Err}
}

// DecodeError reports a stream item whose payload could not be parsed.
type DecodeError struct {
	Op      string
	Payload string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed payload %q: %v", e.Op, truncate(e.Payload, 64), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IncompleteDownloadError is returned when a download stream ends before any
// item reports completion. File holds the last file name the middleware sent.
type IncompleteDownloadError struct {
	File string
}

func (e *IncompleteDownloadError) Error() string {
	return fmt.Sprintf("download ended before completion: %s", e.File)
}

// IsStatusError reports whether err carries a failure from the middleware
// rather than a local precondition.
func IsStatusError(err error) bool {
	var (
		rpcErr    *RPCError
		streamErr *StreamError
		decodeErr *DecodeError
		dlErr     *IncompleteDownloadError
	)
	return errors.As(err, &rpcErr) || errors.As(err, &streamErr) ||
		errors.As(err, &decodeErr) || errors.As(err, &dlErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
