package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/superbuilder/coreui/backend/internal/domain/relay"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/logging"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
	"github.com/superbuilder/coreui/backend/internal/providers/system"
)

// Version is reported by the root endpoint.
const Version = "0.3.0"

// Relay is the middleware relay the commands forward to.
type Relay interface {
	Connect(ctx context.Context) (string, error)
	Connected() bool
	Target() string

	GetConfig(ctx context.Context, assistant string) (string, error)
	LoadModels(ctx context.Context) (bool, error)
	UpdateDBModels(ctx context.Context, assistant, modelsJSON string) (bool, error)
	CheckHealth(ctx context.Context) (string, error)
	GetChatHistory(ctx context.Context) (string, error)
	RenameSession(ctx context.Context, sid int32, name string) (bool, error)
	RemoveSession(ctx context.Context, sid int32) (bool, error)
	AddSingleQuery(ctx context.Context, sid int32, prompt, response string, name *string) (bool, error)
	GetFileList(ctx context.Context, fileType string) (string, error)
	RemoveFiles(ctx context.Context, files string) (string, error)
	StopChat(ctx context.Context) error
	StopUpload(ctx context.Context) error

	Chat(ctx context.Context, req relay.ChatRequest) error
	Download(ctx context.Context, req relay.DownloadRequest) (string, error)
	Upload(ctx context.Context, paths string) error
}

// ModelHub looks up model metadata.
type ModelHub interface {
	ModelInfo(ctx context.Context, modelID string) (string, error)
}

// System reports host information.
type System interface {
	Username() (string, error)
	Info() system.Info
}

// Handlers contains all HTTP handlers
type Handlers struct {
	relay    Relay
	hub      ModelHub
	system   System
	metrics  *HandlerMetrics
	snapshot func() monitoring.MetricsSnapshot
	logger   *logging.Logger
	commands map[string]entry
}

// NewHandlers creates a new handler set
func NewHandlers(
	relaySvc Relay,
	modelHub ModelHub,
	sys System,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handlers {
	if logger == nil {
		logger = &logging.Logger{Logger: zap.NewNop()}
	}
	h := &Handlers{
		relay:    relaySvc,
		hub:      modelHub,
		system:   sys,
		metrics:  NewHandlerMetrics(metrics),
		logger:   logger,
		commands: make(map[string]entry),
	}
	if metrics != nil {
		h.snapshot = metrics.Snapshot
	}
	h.registerCommands()
	return h
}

// Commands returns every accepted command name, aliases included.
func (h *Handlers) Commands() []string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	return names
}

// Root handles the liveness probe
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "CoreUI Shell",
		"version": Version,
	})
}

// Health reports shell status and middleware connectivity
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status": "healthy",
		"middleware": gin.H{
			"connected": h.relay.Connected(),
			"target":    h.relay.Target(),
		},
		"system": h.system.Info(),
	}
	if h.snapshot != nil {
		body["metrics"] = h.snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// Command dispatches POST /commands/:name
func (h *Handlers) Command(c *gin.Context) {
	name := c.Param("name")
	ctx := c.Request.Context()
	log := h.logger.WithTrace(ctx).With(zap.String("command", name))

	cmd, ok := h.commands[name]
	if !ok {
		h.fail(c, log, h.metrics.TrackCommand("unknown"), fmt.Errorf("%w: %s", ErrUnknownCommand, name))
		return
	}
	done := h.metrics.TrackCommand(cmd.canonical)

	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, log, done, &ArgumentError{Command: name, Err: err})
		return
	}

	data, err := cmd.run(ctx, name, body)
	if err != nil {
		h.fail(c, log, done, err)
		return
	}

	done("success")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *Handlers) fail(c *gin.Context, log *zap.Logger, done func(string), err error) {
	code := statusFor(err)
	done(statusLabel(code))
	_ = c.Error(err)

	if code >= http.StatusInternalServerError {
		log.Warn("Command failed", zap.Int("status", code), zap.Error(err))
	} else {
		log.Debug("Command rejected", zap.Int("status", code), zap.Error(err))
	}

	c.JSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
