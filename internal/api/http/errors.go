package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/providers/hub"
	"github.com/superbuilder/coreui/backend/internal/providers/system"
)

// ErrUnknownCommand is returned for command names with no handler.
var ErrUnknownCommand = errors.New("unknown command")

// ArgumentError reports command arguments that could not be decoded.
type ArgumentError struct {
	Command string
	Err     error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Command, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// statusFor maps a command error to its HTTP status.
func statusFor(err error) int {
	var argErr *ArgumentError

	switch {
	case errors.As(err, &argErr), errors.Is(err, hub.ErrInvalidModelID):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, hub.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, superbuilder.ErrNotInitialized),
		errors.Is(err, superbuilder.ErrConnection),
		errors.Is(err, hub.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, system.ErrNoUsername):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// statusLabel is the metrics outcome of a command error.
func statusLabel(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "error"
	}
}
