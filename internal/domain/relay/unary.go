package relay

import (
	"context"

	"go.uber.org/zap"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
)

// HealthCheckName is the caller name sent with every health probe.
const HealthCheckName = "CoreUI"

// unary leases the current client and runs one call against it. The call
// does not inherit ctx cancellation; it is bounded only when RPCTimeout is set.
func unary[T any](ctx context.Context, s *Service, fn func(context.Context, *superbuilder.Client) (T, error)) (T, error) {
	var zero T

	client, release, err := s.handle.Acquire()
	if err != nil {
		return zero, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)
	if s.cfg.RPCTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RPCTimeout)
		defer cancel()
	}

	return fn(ctx, client)
}

// Connect dials the configured middleware and announces it to the UI.
func (s *Service) Connect(ctx context.Context) (string, error) {
	if err := s.handle.Connect(ctx, s.cfg.Target); err != nil {
		return "", err
	}
	if err := s.emit(EventMiddlewareConnected, s.handle.Target()); err != nil {
		s.logger.Warn("Failed to announce middleware connection", zap.Error(err))
	}
	return "Connected", nil
}

// GetConfig returns the UI configuration for assistant.
func (s *Service) GetConfig(ctx context.Context, assistant string) (string, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (string, error) {
		return c.GetClientConfig(ctx, assistant)
	})
}

// LoadModels asks the middleware to load the active models.
func (s *Service) LoadModels(ctx context.Context) (bool, error) {
	status, err := unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (bool, error) {
		return c.LoadModels(ctx)
	})
	if err == nil {
		s.logger.Info("Models loaded", zap.Bool("status", status))
	}
	return status, err
}

// UpdateDBModels sets the active assistant and its models.
func (s *Service) UpdateDBModels(ctx context.Context, assistant, modelsJSON string) (bool, error) {
	ok, err := unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (bool, error) {
		return c.SetActiveAssistant(ctx, assistant, modelsJSON)
	})
	if err == nil && ok {
		s.logger.Info("Model updated successfully", zap.String("assistant", assistant))
	}
	return ok, err
}

// CheckHealth probes the middleware's LLM worker.
func (s *Service) CheckHealth(ctx context.Context) (string, error) {
	msg, err := unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (string, error) {
		return c.SayHello(ctx, HealthCheckName)
	})
	if err == nil {
		s.logger.Info("Middleware health check", zap.String("reply", msg))
	}
	return msg, err
}

// GetChatHistory returns the serialized chat history.
func (s *Service) GetChatHistory(ctx context.Context) (string, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (string, error) {
		return c.GetChatHistory(ctx)
	})
}

// RenameSession renames chat session sid.
func (s *Service) RenameSession(ctx context.Context, sid int32, name string) (bool, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (bool, error) {
		return c.SetSessionName(ctx, sid, name)
	})
}

// RemoveSession deletes chat session sid.
func (s *Service) RemoveSession(ctx context.Context, sid int32) (bool, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (bool, error) {
		return c.RemoveSession(ctx, sid)
	})
}

// AddSingleQuery stores one prompt/response pair in session sid.
func (s *Service) AddSingleQuery(ctx context.Context, sid int32, prompt, response string, name *string) (bool, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (bool, error) {
		return c.AddSingleQuery(ctx, sid, prompt, response, name)
	})
}

// GetFileList lists middleware files of fileType; "" lists all.
func (s *Service) GetFileList(ctx context.Context, fileType string) (string, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (string, error) {
		return c.GetFileList(ctx, fileType)
	})
}

// RemoveFiles deletes files and returns the middleware's removal report.
func (s *Service) RemoveFiles(ctx context.Context, files string) (string, error) {
	return unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (string, error) {
		return c.RemoveFiles(ctx, files)
	})
}

// StopChat asks the middleware to stop generating. The chat stream being
// pumped elsewhere observes the resulting end or error on its own.
func (s *Service) StopChat(ctx context.Context) error {
	_, err := unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (struct{}, error) {
		return struct{}{}, c.StopChat(ctx)
	})
	return err
}

// StopUpload asks the middleware to stop the running upload.
func (s *Service) StopUpload(ctx context.Context) error {
	_, err := unary(ctx, s, func(ctx context.Context, c *superbuilder.Client) (struct{}, error) {
		return struct{}{}, c.StopAddFiles(ctx)
	})
	return err
}
