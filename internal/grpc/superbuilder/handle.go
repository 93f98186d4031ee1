package superbuilder

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// DefaultConnectTimeout bounds a single connect attempt.
const DefaultConnectTimeout = 5 * time.Second

// Handle is the process-wide cell holding the current middleware client.
// It starts empty and is filled by Connect. Callers take a lease with
// Acquire and use the client without holding the lock, so a reconnect never
// waits on in-flight calls. A replaced client is closed once its last lease
// is released.
type Handle struct {
	mu      sync.Mutex
	current *Client

	dialOpts       []grpc.DialOption
	connectTimeout time.Duration
	logger         *zap.Logger
}

// Option configures a Handle
type Option func(*Handle)

// WithDialOptions appends dial options used for every connect attempt.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(h *Handle) {
		h.dialOpts = append(h.dialOpts, opts...)
	}
}

// WithConnectTimeout overrides DefaultConnectTimeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(h *Handle) {
		if d > 0 {
			h.connectTimeout = d
		}
	}
}

// WithLogger sets the logger used for connection lifecycle messages.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handle) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandle returns an empty handle.
func NewHandle(opts ...Option) *Handle {
	h := &Handle{
		connectTimeout: DefaultConnectTimeout,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Connect dials target and installs the result as the current client.
// On failure the previous client, if any, stays current and ErrConnection
// is returned.
func (h *Handle) Connect(ctx context.Context, target string) error {
	ctx, cancel := context.WithTimeout(ctx, h.connectTimeout)
	defer cancel()

	client, err := Dial(ctx, target, h.dialOpts...)
	if err != nil {
		h.logger.Warn("Middleware connect failed",
			zap.String("target", target),
			zap.Error(err),
		)
		return ErrConnection
	}

	h.mu.Lock()
	prev := h.current
	h.current = client
	closePrev := false
	if prev != nil {
		prev.retired = true
		closePrev = prev.leases == 0
	}
	h.mu.Unlock()

	if closePrev {
		h.closeClient(prev)
	}

	h.logger.Info("Connected to middleware", zap.String("addr", client.Addr()))
	return nil
}

// Acquire leases the current client. The returned release func must be
// called when the caller is done; it is safe to call more than once.
func (h *Handle) Acquire() (*Client, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return nil, nil, ErrNotInitialized
	}

	client := h.current
	client.leases++

	var once sync.Once
	release := func() {
		once.Do(func() { h.release(client) })
	}
	return client, release, nil
}

func (h *Handle) release(client *Client) {
	h.mu.Lock()
	client.leases--
	closeNow := client.retired && client.leases == 0
	h.mu.Unlock()

	if closeNow {
		h.closeClient(client)
	}
}

func (h *Handle) closeClient(client *Client) {
	if err := client.Close(); err != nil {
		h.logger.Warn("Failed to close retired middleware client",
			zap.String("addr", client.Addr()),
			zap.Error(err),
		)
		return
	}
	h.logger.Debug("Closed retired middleware client", zap.String("addr", client.Addr()))
}

// Connected reports whether a client is installed.
func (h *Handle) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current != nil
}

// Target returns the address of the current client, or "" when empty.
func (h *Handle) Target() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return ""
	}
	return h.current.Addr()
}

// Close empties the handle and closes the current client. Outstanding
// leases keep the channel open until they are released.
func (h *Handle) Close() error {
	h.mu.Lock()
	client := h.current
	h.current = nil
	closeNow := false
	if client != nil {
		client.retired = true
		closeNow = client.leases == 0
	}
	h.mu.Unlock()

	if closeNow {
		return client.Close()
	}
	return nil
}
