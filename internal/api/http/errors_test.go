package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/providers/hub"
	"github.com/superbuilder/coreui/backend/internal/providers/system"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not initialized", superbuilder.ErrNotInitialized, http.StatusServiceUnavailable},
		{"connection", superbuilder.ErrConnection, http.StatusServiceUnavailable},
		{"rpc", &superbuilder.RPCError{Op: "GetChatHistory", Err: errors.New("x")}, http.StatusBadGateway},
		{"stream", &superbuilder.StreamError{Op: "Chat", Err: errors.New("x")}, http.StatusBadGateway},
		{"decode", &superbuilder.DecodeError{Op: "Chat", Err: errors.New("x")}, http.StatusBadGateway},
		{"incomplete", &superbuilder.IncompleteDownloadError{File: "f"}, http.StatusBadGateway},
		{"arguments", &ArgumentError{Command: "chat", Err: errors.New("x")}, http.StatusBadRequest},
		{"unknown", fmt.Errorf("%w: x", ErrUnknownCommand), http.StatusNotFound},
		{"model missing", hub.ErrNotFound, http.StatusNotFound},
		{"model id", hub.ErrInvalidModelID, http.StatusBadRequest},
		{"hub down", hub.ErrUnavailable, http.StatusServiceUnavailable},
		{"username", system.ErrNoUsername, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "invalid", statusLabel(http.StatusBadRequest))
	assert.Equal(t, "not_found", statusLabel(http.StatusNotFound))
	assert.Equal(t, "unavailable", statusLabel(http.StatusServiceUnavailable))
	assert.Equal(t, "error", statusLabel(http.StatusBadGateway))
}

func TestArgumentError(t *testing.T) {
	cause := errors.New("missing sid")
	err := &ArgumentError{Command: "remove_session", Err: cause}

	assert.Equal(t, "invalid arguments for remove_session: missing sid", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHandlerMetricsNil(t *testing.T) {
	var hm *HandlerMetrics
	assert.NotPanics(t, func() { hm.TrackCommand("chat")("success") })
	assert.NotPanics(t, func() { NewHandlerMetrics(nil).TrackCommand("chat")("success") })
}
