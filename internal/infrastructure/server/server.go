package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	apihttp "github.com/superbuilder/coreui/backend/internal/api/http"
	"github.com/superbuilder/coreui/backend/internal/api/middleware"
	"github.com/superbuilder/coreui/backend/internal/api/ws"
	"github.com/superbuilder/coreui/backend/internal/domain/relay"
	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/config"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/logging"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/tracing"
	"github.com/superbuilder/coreui/backend/internal/providers/hub"
	"github.com/superbuilder/coreui/backend/internal/providers/system"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	handle  *superbuilder.Handle
	relay   *relay.Service
	events  *ws.Hub
	tracer  *tracing.Tracer
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// Option customizes server construction
type Option func(*options)

type options struct {
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	dialOpts []grpc.DialOption
}

// WithLogger replaces the logger built from the logging config.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics replaces the default metrics collector.
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithDialOptions appends gRPC dial options for the middleware connection.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOpts = append(o.dialOpts, opts...) }
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	logger.Info("Initializing CoreUI shell backend",
		zap.String("port", cfg.Server.Port),
		zap.String("middleware_addr", cfg.Middleware.Address),
	)

	metrics := o.metrics
	if metrics == nil {
		metrics = monitoring.NewMetrics(nil)
	}
	tracer := tracing.New("coreui-shell", logger.Logger)

	dialOpts := append([]grpc.DialOption{
		grpc.WithChainUnaryInterceptor(
			tracing.GRPCClientInterceptor(tracer),
			monitoring.UnaryClientInterceptor(metrics),
		),
		grpc.WithChainStreamInterceptor(
			tracing.GRPCStreamClientInterceptor(tracer),
			monitoring.StreamClientInterceptor(metrics),
		),
	}, o.dialOpts...)

	handle := superbuilder.NewHandle(
		superbuilder.WithDialOptions(dialOpts...),
		superbuilder.WithConnectTimeout(cfg.Middleware.ConnectTimeout),
		superbuilder.WithLogger(logger.Named("superbuilder")),
	)

	events := ws.NewHub(logger.Named("events"), metrics, cfg.Events.BufferSize)

	relaySvc := relay.NewService(handle, events, logger.Named("relay"), relay.Config{
		Target:      cfg.Middleware.Address,
		RPCTimeout:  cfg.Middleware.RPCTimeout,
		StopTimeout: cfg.Middleware.StopTimeout,
	}).WithMetrics(metrics)

	hubClient := hub.NewClient(cfg.Hub,
		hub.WithMetrics(metrics),
		hub.WithLogger(logger.Named("hub")),
	)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.Server.AllowedOrigins...)))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := apihttp.NewHandlers(relaySvc, hubClient, system.NewProvider(), metrics, logger)
	wsHandler := ws.NewHandler(events, logger.Named("ws"), cfg.Server.AllowedOrigins, cfg.Events.WriteTimeout)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.POST("/commands/:name", handlers.Command)
	router.GET("/events", wsHandler.HandleConnection)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		handle:  handle,
		relay:   relaySvc,
		events:  events,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Relay returns the middleware relay.
func (s *Server) Relay() *relay.Service {
	return s.relay
}

// AutoConnect makes the single startup connection attempt when enabled.
// A failure is logged; the UI can still call connect_client later.
func (s *Server) AutoConnect(ctx context.Context) {
	if !s.config.Middleware.AutoConnect {
		return
	}
	if _, err := s.relay.Connect(ctx); err != nil {
		s.logger.Warn("Auto-connect to middleware failed",
			zap.String("addr", s.config.Middleware.Address),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Auto-connected to middleware", zap.String("addr", s.relay.Target()))
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.AutoConnect(context.Background())

	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	s.events.Close()

	if err := s.handle.Close(); err != nil {
		s.logger.Error("Failed to close middleware client", zap.Error(err))
		errs = append(errs, fmt.Errorf("failed to close middleware client: %w", err))
	} else {
		s.logger.Info("Closed middleware connection")
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return errors.Join(errs...)
}
