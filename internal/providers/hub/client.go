package hub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/superbuilder/coreui/backend/internal/infrastructure/config"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/resilience"
)

var (
	// ErrInvalidModelID is returned for ids that cannot name a hub model.
	ErrInvalidModelID = errors.New("invalid model id")
	// ErrNotFound is returned when the hub has no such model.
	ErrNotFound = errors.New("model not found")
	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("model hub unavailable")
)

const userAgent = "CoreUI-Shell/1.0"

// StatusError reports an unexpected hub response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model hub returned %d: %s", e.Code, e.Body)
}

// Client fetches model metadata from a Hugging Face compatible hub.
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	breaker *resilience.Breaker
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// Option configures a Client
type Option func(*options)

type options struct {
	metrics      *monitoring.Metrics
	logger       *zap.Logger
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// WithMetrics records every hub call on metrics.
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRetryWait overrides the retry backoff bounds.
func WithRetryWait(min, max time.Duration) Option {
	return func(o *options) {
		o.retryWaitMin = min
		o.retryWaitMax = max
	}
}

// NewClient creates a hub client. Transient failures (connection errors,
// 429 and 5xx) are retried by the transport; repeated failures open a
// circuit breaker.
func NewClient(cfg config.HubConfig, opts ...Option) *Client {
	o := options{
		logger:       zap.NewNop(),
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Retries
	retryClient.RetryWaitMin = o.retryWaitMin
	retryClient.RetryWaitMax = o.retryWaitMax
	retryClient.Logger = retryLogger{o.logger.Sugar()}

	restyClient := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(strings.TrimSuffix(cfg.Endpoint, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	breaker := resilience.New("model-hub", resilience.Settings{
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidModelID)
		},
		OnStateChange: func(name string, from, to resilience.State) {
			o.logger.Warn("Circuit breaker state change",
				zap.String("name", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})

	return &Client{
		resty:   restyClient,
		limiter: limiter,
		breaker: breaker,
		metrics: o.metrics,
		logger:  o.logger,
	}
}

// ModelInfo returns the raw JSON metadata of modelID ("org/name").
func (c *Client) ModelInfo(ctx context.Context, modelID string) (string, error) {
	modelID = strings.TrimSpace(modelID)
	if err := validateModelID(modelID); err != nil {
		return "", err
	}

	timer := monitoring.NewTimer(c.metrics, "hub", "model_info")

	if err := c.limiter.Wait(ctx); err != nil {
		timer.Stop("rate_limited")
		return "", fmt.Errorf("rate limit error: %w", err)
	}

	body, err := resilience.Execute(c.breaker, func() (string, error) {
		return c.fetch(ctx, modelID)
	})

	switch {
	case err == nil:
		timer.Stop("success")
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequests):
		timer.Stop("rejected")
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		timer.Stop("error")
		c.logger.Debug("Model info request failed", zap.String("model", modelID), zap.Error(err))
		return "", err
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, modelID string) (string, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetRawPathParam("model", modelID).
		Get("/api/models/{model}")
	if err != nil {
		return "", fmt.Errorf("model hub request failed: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, modelID)
	case code < 200 || code >= 300:
		return "", &StatusError{Code: code, Body: truncate(resp.String(), 200)}
	}
	return resp.String(), nil
}

// BreakerState returns the current circuit breaker state
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

func validateModelID(modelID string) error {
	if modelID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidModelID)
	}
	if strings.Count(modelID, "/") > 1 || strings.Contains(modelID, "..") ||
		strings.HasPrefix(modelID, "/") || strings.HasSuffix(modelID, "/") ||
		strings.ContainsAny(modelID, " ?#%\\") {
		return fmt.Errorf("%w: %q", ErrInvalidModelID, modelID)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// retryLogger adapts zap to retryablehttp's leveled logger.
type retryLogger struct {
	s *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
