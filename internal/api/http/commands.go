package http

import (
	"bytes"
	"context"

	"github.com/gin-gonic/gin/binding"

	"github.com/superbuilder/coreui/backend/internal/domain/relay"
)

// command runs one UI command against its raw JSON arguments.
type command func(ctx context.Context, name string, body []byte) (any, error)

type entry struct {
	canonical string
	run       command
}

func bind[A any](name string, body []byte) (A, error) {
	var args A
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := binding.JSON.BindBody(body, &args); err != nil {
		return args, &ArgumentError{Command: name, Err: err}
	}
	return args, nil
}

func withArgs[A any](fn func(ctx context.Context, args A) (any, error)) command {
	return func(ctx context.Context, name string, body []byte) (any, error) {
		args, err := bind[A](name, body)
		if err != nil {
			return nil, err
		}
		return fn(ctx, args)
	}
}

func noArgs(fn func(ctx context.Context) (any, error)) command {
	return func(ctx context.Context, _ string, _ []byte) (any, error) {
		return fn(ctx)
	}
}

// Opaque string arguments are pointers: required rejects a missing key but
// accepts "", which the front-end sends for the default assistant.

type assistantArgs struct {
	Assistant *string `json:"assistant" binding:"required"`
}

type activeAssistantArgs struct {
	Assistant  *string `json:"assistant" binding:"required"`
	ModelsJSON *string `json:"models_json" binding:"required"`
}

type renameArgs struct {
	SessionID *int32 `json:"sid" binding:"required"`
	Name      string `json:"name"`
}

type sessionArgs struct {
	SessionID *int32 `json:"sid" binding:"required"`
}

type singleQueryArgs struct {
	SessionID *int32  `json:"sid" binding:"required"`
	Prompt    string  `json:"prompt"`
	Response  string  `json:"response"`
	Name      *string `json:"name"`
}

type fileListArgs struct {
	FileType string `json:"file_type"`
}

type removeFilesArgs struct {
	Files *string `json:"files" binding:"required"`
}

type downloadArgs struct {
	FileURL   *string `json:"file_url" binding:"required"`
	LocalPath *string `json:"local_path" binding:"required"`
	TokenID   *string `json:"token_id"`
}

type uploadArgs struct {
	Paths *string `json:"paths" binding:"required"`
}

type modelInfoArgs struct {
	ModelID string `json:"model_id" binding:"required"`
}

// registerCommands builds the command table. Aliases keep the names the
// desktop front-end already invokes.
func (h *Handlers) registerCommands() {
	h.add(noArgs(func(ctx context.Context) (any, error) {
		return h.relay.Connect(ctx)
	}), "connect_client")

	h.add(withArgs(func(ctx context.Context, a assistantArgs) (any, error) {
		return h.relay.GetConfig(ctx, *a.Assistant)
	}), "get_config")

	h.add(noArgs(func(ctx context.Context) (any, error) {
		return h.relay.LoadModels(ctx)
	}), "load_models")

	// update_db_models answers with the middleware's success flag rather than
	// a fixed confirmation string.
	h.add(withArgs(func(ctx context.Context, a activeAssistantArgs) (any, error) {
		return h.relay.UpdateDBModels(ctx, *a.Assistant, *a.ModelsJSON)
	}), "update_db_models")

	h.add(noArgs(func(ctx context.Context) (any, error) {
		return h.relay.CheckHealth(ctx)
	}), "check_health", "check_pyllm")

	h.add(noArgs(func(ctx context.Context) (any, error) {
		return h.relay.GetChatHistory(ctx)
	}), "get_chat_history")

	h.add(withArgs(func(ctx context.Context, a renameArgs) (any, error) {
		return h.relay.RenameSession(ctx, *a.SessionID, a.Name)
	}), "rename_session", "rename_chat_session")

	h.add(withArgs(func(ctx context.Context, a sessionArgs) (any, error) {
		return h.relay.RemoveSession(ctx, *a.SessionID)
	}), "remove_session", "remove_chat_session")

	h.add(withArgs(func(ctx context.Context, a singleQueryArgs) (any, error) {
		return h.relay.AddSingleQuery(ctx, *a.SessionID, a.Prompt, a.Response, a.Name)
	}), "add_single_query")

	h.add(withArgs(func(ctx context.Context, a fileListArgs) (any, error) {
		return h.relay.GetFileList(ctx, a.FileType)
	}), "get_file_list")

	h.add(withArgs(func(ctx context.Context, a removeFilesArgs) (any, error) {
		return h.relay.RemoveFiles(ctx, *a.Files)
	}), "remove_file")

	h.add(noArgs(func(ctx context.Context) (any, error) {
		return nil, h.relay.StopChat(ctx)
	}), "stop_chat")

	h.add(noArgs(func(ctx context.Context) (any, error) {
		return nil, h.relay.StopUpload(ctx)
	}), "stop_upload_file", "stop_upload")

	h.add(withArgs(func(ctx context.Context, req relay.ChatRequest) (any, error) {
		return nil, h.relay.Chat(ctx, req)
	}), "chat", "call_chat")

	h.add(withArgs(func(ctx context.Context, a downloadArgs) (any, error) {
		return h.relay.Download(ctx, relay.DownloadRequest{
			FileURL:   *a.FileURL,
			LocalPath: *a.LocalPath,
			TokenID:   a.TokenID,
		})
	}), "download_file", "download_model")

	h.add(withArgs(func(ctx context.Context, a uploadArgs) (any, error) {
		return nil, h.relay.Upload(ctx, *a.Paths)
	}), "upload_files", "upload_file")

	h.add(noArgs(func(context.Context) (any, error) {
		return h.system.Username()
	}), "get_username")

	h.add(withArgs(func(ctx context.Context, a modelInfoArgs) (any, error) {
		return h.hub.ModelInfo(ctx, a.ModelID)
	}), "get_hf_model_info")
}

func (h *Handlers) add(run command, names ...string) {
	for _, name := range names {
		h.commands[name] = entry{canonical: names[0], run: run}
	}
}
