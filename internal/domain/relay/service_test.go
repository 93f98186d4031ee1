package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
	"github.com/superbuilder/coreui/backend/internal/testutil"
)

type fixture struct {
	svc      *Service
	fake     *testutil.FakeMiddleware
	recorder *testutil.Recorder
	metrics  *monitoring.Metrics
}

// newFixture builds a relay whose handle is already connected to a fake
// middleware. No middleware-connected event is recorded.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := newDisconnected(t)
	require.NoError(t, f.svc.Handle().Connect(context.Background(), f.svc.Target()))
	return f
}

// newDisconnected builds a relay with a served fake but an empty handle.
func newDisconnected(t *testing.T) *fixture {
	t.Helper()

	net := testutil.NewNetwork()
	fake := testutil.NewFakeMiddleware()
	target := net.Serve(t, "middleware", fake)

	logger := zaptest.NewLogger(t)
	handle := superbuilder.NewHandle(
		superbuilder.WithDialOptions(net.Dialer()),
		superbuilder.WithConnectTimeout(2*time.Second),
		superbuilder.WithLogger(logger),
	)
	t.Cleanup(func() { _ = handle.Close() })

	recorder := testutil.NewRecorder()
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	svc := NewService(handle, recorder, logger, Config{
		Target:      target,
		RPCTimeout:  2 * time.Second,
		StopTimeout: time.Second,
	}).WithMetrics(metrics)

	return &fixture{svc: svc, fake: fake, recorder: recorder, metrics: metrics}
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(superbuilder.NewHandle(), testutil.NewRecorder(), nil, Config{})

	assert.Equal(t, DefaultConfig(), svc.cfg)
	assert.Zero(t, svc.cfg.RPCTimeout)
	assert.Equal(t, "127.0.0.1:5006", svc.Target())
	assert.NotNil(t, svc.logger)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"stream", &superbuilder.StreamError{Op: "Chat", Err: errors.New("x")}, "stream_error"},
		{"decode", &superbuilder.DecodeError{Op: "Chat", Err: errors.New("x")}, "decode_error"},
		{"incomplete", &superbuilder.IncompleteDownloadError{File: "f"}, "incomplete"},
		{"emit", errors.Join(ErrEmit, errors.New("x")), "emit_error"},
		{"other", errors.New("x"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(tt.err))
		})
	}
}

func TestWithStop(t *testing.T) {
	stopErr := errors.New("stop failed")

	t.Run("no stop error", func(t *testing.T) {
		cause := errors.New("cause")
		assert.Same(t, cause, withStop(cause, nil))
	})

	t.Run("stream error records stop", func(t *testing.T) {
		cause := &superbuilder.StreamError{Op: "AddFiles", Err: errors.New("reset")}
		err := withStop(cause, stopErr)
		assert.Same(t, cause, err)
		assert.Equal(t, stopErr, cause.StopErr)
		assert.ErrorIs(t, err, stopErr)
	})

	t.Run("other causes are joined", func(t *testing.T) {
		cause := &superbuilder.DecodeError{Op: "Chat", Err: errors.New("bad")}
		err := withStop(cause, stopErr)
		assert.ErrorIs(t, err, stopErr)
		var decodeErr *superbuilder.DecodeError
		assert.True(t, errors.As(err, &decodeErr))
	})
}

func TestEmitWrapsFailure(t *testing.T) {
	f := newDisconnected(t)
	boom := errors.New("window closed")
	f.recorder.FailOn(EventNewMessage, boom)

	err := f.svc.emit(EventNewMessage, "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmit)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), EventNewMessage)

	require.NoError(t, f.svc.emit(EventFirstWord, false))
	assert.Equal(t, int64(1), f.metrics.Snapshot().EventsEmitted)
}
