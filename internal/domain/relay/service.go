package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
)

// Event names understood by the UI.
const (
	EventFirstWord           = "first_word"
	EventNewMessage          = "new_message"
	EventStreamCompleted     = "stream-completed"
	EventDownloadProgress    = "download-progress"
	EventDownloadCompleted   = "download-completed"
	EventUploadProgress      = "upload-progress"
	EventUploadCompleted     = "upload-completed"
	EventMiddlewareConnected = "middleware-connected"
)

// ErrEmit wraps a failure to deliver an event to the UI.
var ErrEmit = errors.New("failed to emit event")

// Emitter delivers named events to the UI. Delivery may be asynchronous;
// a nil error only means the event was accepted.
type Emitter interface {
	Emit(event string, payload any) error
}

// Config holds relay tuning.
type Config struct {
	// Target is the middleware address used by Connect.
	Target string
	// RPCTimeout bounds each unary call. Zero leaves calls unbounded.
	RPCTimeout time.Duration
	// StopTimeout bounds the cooperative stop call sent after a stream fails.
	StopTimeout time.Duration
}

// DefaultConfig returns the relay defaults.
func DefaultConfig() Config {
	return Config{
		Target:      "127.0.0.1:5006",
		RPCTimeout:  0,
		StopTimeout: 5 * time.Second,
	}
}

// Service forwards UI commands to the middleware and relays stream items
// back as events.
type Service struct {
	handle  *superbuilder.Handle
	emitter Emitter
	logger  *zap.Logger
	metrics *monitoring.Metrics
	cfg     Config
}

// NewService creates a relay bound to handle and emitter.
func NewService(handle *superbuilder.Handle, emitter Emitter, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultConfig()
	if cfg.Target == "" {
		cfg.Target = defaults.Target
	}
	if cfg.RPCTimeout < 0 {
		cfg.RPCTimeout = defaults.RPCTimeout
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = defaults.StopTimeout
	}
	return &Service{
		handle:  handle,
		emitter: emitter,
		logger:  logger,
		cfg:     cfg,
	}
}

// WithMetrics attaches a metrics collector.
func (s *Service) WithMetrics(metrics *monitoring.Metrics) *Service {
	s.metrics = metrics
	return s
}

// Handle exposes the underlying client handle.
func (s *Service) Handle() *superbuilder.Handle {
	return s.handle
}

// Target returns the configured middleware address.
func (s *Service) Target() string {
	return s.cfg.Target
}

// Connected reports whether a middleware client is installed.
func (s *Service) Connected() bool {
	return s.handle.Connected()
}

func (s *Service) emit(event string, payload any) error {
	if err := s.emitter.Emit(event, payload); err != nil {
		return fmt.Errorf("%w %s: %w", ErrEmit, event, err)
	}
	if s.metrics != nil {
		s.metrics.RecordEvent(event)
	}
	return nil
}

// complete emits a terminal event. Its failure is logged and dropped.
func (s *Service) complete(logger *zap.Logger, event string, payload any) {
	if err := s.emit(event, payload); err != nil {
		logger.Warn("Failed to emit completion event",
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

// stop runs a cooperative stop call on a context detached from the stream.
func (s *Service) stop(logger *zap.Logger, op string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.StopTimeout)
	defer cancel()

	logger.Info("Sending stop signal to middleware", zap.String("op", op))
	err := fn(ctx)
	if s.metrics != nil {
		s.metrics.RecordStopHandshake(op, err == nil)
	}
	if err != nil {
		logger.Warn("Stop signal failed", zap.String("op", op), zap.Error(err))
	}
	return err
}

func (s *Service) streamStarted(kind string) {
	if s.metrics != nil {
		s.metrics.StreamStarted(kind)
	}
}

func (s *Service) streamFinished(kind string, err error) {
	if s.metrics != nil {
		s.metrics.StreamFinished(kind, outcome(err))
	}
}

func outcome(err error) string {
	var (
		streamErr *superbuilder.StreamError
		decodeErr *superbuilder.DecodeError
		dlErr     *superbuilder.IncompleteDownloadError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &streamErr):
		return "stream_error"
	case errors.As(err, &decodeErr):
		return "decode_error"
	case errors.As(err, &dlErr):
		return "incomplete"
	case errors.Is(err, ErrEmit):
		return "emit_error"
	default:
		return "error"
	}
}

// withStop attaches a failed stop call to the error that triggered it.
func withStop(cause, stopErr error) error {
	if stopErr == nil {
		return cause
	}
	var streamErr *superbuilder.StreamError
	if errors.As(cause, &streamErr) {
		streamErr.StopErr = stopErr
		return cause
	}
	return errors.Join(cause, stopErr)
}
