package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apihttp "github.com/superbuilder/coreui/backend/internal/api/http"
	"github.com/superbuilder/coreui/backend/internal/domain/relay"
	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/logging"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
	"github.com/superbuilder/coreui/backend/internal/providers/hub"
	"github.com/superbuilder/coreui/backend/internal/providers/system"
	"github.com/superbuilder/coreui/backend/internal/testutil"
	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

type stubHub struct {
	info string
	err  error
	last string
}

func (s *stubHub) ModelInfo(_ context.Context, modelID string) (string, error) {
	s.last = modelID
	return s.info, s.err
}

type stubSystem struct {
	user string
	err  error
}

func (s stubSystem) Username() (string, error) { return s.user, s.err }

func (s stubSystem) Info() system.Info { return system.Info{OS: "linux", CPUs: 4} }

type env struct {
	router   *gin.Engine
	fake     *testutil.FakeMiddleware
	recorder *testutil.Recorder
	relay    *relay.Service
	hub      *stubHub
	metrics  *monitoring.Metrics
}

func newEnv(t *testing.T, connected bool) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	recorder := testutil.NewRecorder()
	svc := relay.NewService(handle, recorder, logger, relay.Config{
		Target:      target,
		RPCTimeout:  2 * time.Second,
		StopTimeout: time.Second,
	}).WithMetrics(metrics)
	if connected {
		require.NoError(t, handle.Connect(context.Background(), target))
	}

	modelHub := &stubHub{info: `{"id":"microsoft/phi-2"}`}
	handlers := apihttp.NewHandlers(svc, modelHub, stubSystem{user: "ada"}, metrics, &logging.Logger{Logger: logger})

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.POST("/commands/:name", handlers.Command)

	return &env{
		router:   router,
		fake:     fake,
		recorder: recorder,
		relay:    svc,
		hub:      modelHub,
		metrics:  metrics,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (e *env) call(t *testing.T, name, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/commands/"+name, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var out envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestCommandsSucceed(t *testing.T) {
	tests := []struct {
		command string
		body    string
		want    string
		method  string
	}{
		{"get_config", `{"assistant":"default"}`, `"{\"ActiveAssistant\":\"default\"}"`, "GetClientConfig"},
		{"load_models", ``, `true`, "LoadModels"},
		{"update_db_models", `{"assistant":"a","models_json":"[]"}`, `true`, "SetActiveAssistant"},
		{"check_health", ``, `"Hello CoreUI"`, "SayHelloPyllm"},
		{"check_pyllm", `{}`, `"Hello CoreUI"`, "SayHelloPyllm"},
		{"get_chat_history", ``, `"[]"`, "GetChatHistory"},
		{"rename_chat_session", `{"sid":0,"name":"renamed"}`, `true`, "SetSessionName"},
		{"remove_chat_session", `{"sid":7}`, `true`, "RemoveSession"},
		{"add_single_query", `{"sid":1,"prompt":"p","response":"r"}`, `true`, "AddSingleQuery"},
		{"get_file_list", ``, `"[]"`, "GetFileList"},
		{"remove_file", `{"files":"a.pdf"}`, `""`, "RemoveFiles"},
		{"stop_chat", ``, `null`, "StopChat"},
		{"stop_upload_file", ``, `null`, "StopAddFiles"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			e := newEnv(t, true)

			code, out := e.call(t, tt.command, tt.body)
			assert.Equal(t, http.StatusOK, code, out.Error)
			assert.True(t, out.Success)
			assert.JSONEq(t, tt.want, string(out.Data))
			assert.Equal(t, 1, e.fake.Calls(tt.method))
		})
	}
}

func TestCommandArgumentsReachMiddleware(t *testing.T) {
	e := newEnv(t, true)

	code, _ := e.call(t, "rename_session", `{"sid":0,"name":"Trip notes"}`)
	require.Equal(t, http.StatusOK, code)
	rename := e.fake.LastRequest("SetSessionName").(*pb.SetSessionNameRequest)
	assert.Equal(t, int32(0), rename.GetSessionId())
	assert.Equal(t, "Trip notes", rename.GetSessionName())

	code, _ = e.call(t, "add_single_query", `{"sid":3,"prompt":"p","response":"r","name":"n"}`)
	require.Equal(t, http.StatusOK, code)
	query := e.fake.LastRequest("AddSingleQuery").(*pb.AddSingleQueryRequest)
	assert.Equal(t, int32(3), query.GetSessionId())
	assert.Equal(t, "n", query.GetName())

	code, _ = e.call(t, "get_file_list", `{"file_type":"pdf"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pdf", e.fake.LastRequest("GetFileList").(*pb.GetFileListRequest).GetFileType())
}

func TestCommandAcceptsEmptyStrings(t *testing.T) {
	e := newEnv(t, true)

	code, out := e.call(t, "get_config", `{"assistant":""}`)
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.True(t, out.Success)
	assert.Equal(t, "", e.fake.LastRequest("GetClientConfig").(*pb.GetClientConfigRequest).GetAssistant())

	code, out = e.call(t, "update_db_models", `{"assistant":"","models_json":""}`)
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.Equal(t, 1, e.fake.Calls("SetActiveAssistant"))

	code, out = e.call(t, "remove_file", `{"files":""}`)
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.Equal(t, "", e.fake.LastRequest("RemoveFiles").(*pb.RemoveFilesRequest).GetFilesToRemove())
}

func TestCommandInvalidArguments(t *testing.T) {
	tests := []struct {
		command string
		body    string
	}{
		{"get_config", `{}`},
		{"update_db_models", `{"assistant":"a"}`},
		{"rename_session", `{"name":"missing sid"}`},
		{"remove_session", `{"sid":"seven"}`},
		{"remove_file", ``},
		{"download_file", `{"file_url":"u"}`},
		{"upload_files", `{}`},
		{"chat", `{not json`},
		{"get_hf_model_info", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			e := newEnv(t, true)

			code, out := e.call(t, tt.command, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, out.Success)
			assert.Contains(t, out.Error, "invalid arguments for "+tt.command)
			assert.Zero(t, e.fake.TotalCalls())
		})
	}
}

func TestCommandUnknown(t *testing.T) {
	e := newEnv(t, true)

	code, out := e.call(t, "format_disk", `{}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "unknown command: format_disk", out.Error)
	assert.Equal(t, 1.0, promtest.ToFloat64(e.metrics.CommandCalls.WithLabelValues("unknown", "not_found")))
}

func TestCommandNotInitialized(t *testing.T) {
	e := newEnv(t, false)

	code, out := e.call(t, "get_chat_history", ``)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, out.Success)
	assert.Equal(t, superbuilder.ErrNotInitialized.Error(), out.Error)
	assert.Zero(t, e.fake.TotalCalls())
}

func TestConnectClient(t *testing.T) {
	e := newEnv(t, false)

	code, out := e.call(t, "connect_client", ``)
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.JSONEq(t, `"Connected"`, string(out.Data))
	assert.Equal(t, []string{relay.EventMiddlewareConnected}, e.recorder.Names())

	code, _ = e.call(t, "check_pyllm", ``)
	assert.Equal(t, http.StatusOK, code)
}

func TestCommandRPCFailure(t *testing.T) {
	e := newEnv(t, true)
	e.fake.Fail("GetClientConfig", status.Error(codes.Internal, "db locked"))

	code, out := e.call(t, "get_config", `{"assistant":"default"}`)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, out.Error, "db locked")
	assert.Equal(t, 1.0, promtest.ToFloat64(e.metrics.CommandCalls.WithLabelValues("get_config", "error")))
}

func TestChatCommand(t *testing.T) {
	e := newEnv(t, true)
	e.fake.SetChat(testutil.Script[*pb.ChatResponse]{
		Items: testutil.ChatItems(`{"message":"Hel"}`, `{"message":"lo"}`),
	})

	body := `{
		"name": "default",
		"prompt": "hi",
		"conversation_history": [{"Role": "user", "Content": "earlier"}],
		"sid": 4,
		"files": "a.pdf"
	}`
	code, out := e.call(t, "call_chat", body)
	require.Equal(t, http.StatusOK, code, out.Error)

	assert.Equal(t, []string{
		relay.EventFirstWord,
		relay.EventNewMessage,
		relay.EventNewMessage,
		relay.EventStreamCompleted,
	}, e.recorder.Names())

	req := e.fake.LastRequest("Chat").(*pb.ChatRequest)
	assert.Equal(t, "hi", req.GetPrompt())
	assert.Equal(t, int32(4), req.GetSessionId())
	assert.Equal(t, "a.pdf", req.GetAttachedFiles())
	require.Len(t, req.GetHistory(), 1)
	assert.Equal(t, "user", req.GetHistory()[0].GetRole())
	assert.Equal(t, 1.0, promtest.ToFloat64(e.metrics.CommandCalls.WithLabelValues("chat", "success")))
}

func TestChatCommandStreamError(t *testing.T) {
	e := newEnv(t, true)
	e.fake.SetChat(testutil.Script[*pb.ChatResponse]{
		Items: testutil.ChatItems(`{"message":"partial"}`),
		Err:   status.Error(codes.Unavailable, "model crashed"),
	})

	code, out := e.call(t, "chat", `{"name":"default","prompt":"hi","sid":1}`)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, out.Error, "model crashed")
	assert.Equal(t, 1, e.fake.Calls("StopChat"))
	assert.Equal(t, relay.EventStreamCompleted, e.recorder.Names()[len(e.recorder.Names())-1])
}

func TestDownloadCommand(t *testing.T) {
	e := newEnv(t, true)
	e.fake.SetDownload(testutil.Script[*pb.DownloadFilesResponse]{
		Items: []*pb.DownloadFilesResponse{
			{Progress: 40, FileDownloaded: "model.gguf"},
			{Progress: 100, FileDownloaded: "model.gguf"},
		},
	})

	code, out := e.call(t, "download_model", `{"file_url":"https://hf.co/m","local_path":"/models"}`)
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.JSONEq(t, `"model.gguf"`, string(out.Data))
	assert.Equal(t, 2, e.recorder.Count(relay.EventDownloadProgress))
	assert.Equal(t, 1, e.recorder.Count(relay.EventDownloadCompleted))
}

func TestDownloadCommandIncomplete(t *testing.T) {
	e := newEnv(t, true)
	e.fake.SetDownload(testutil.Script[*pb.DownloadFilesResponse]{
		Items: []*pb.DownloadFilesResponse{{Progress: 40, FileDownloaded: "model.gguf"}},
	})

	code, out := e.call(t, "download_file", `{"file_url":"https://hf.co/m","local_path":"/models"}`)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "model.gguf")
}

func TestUploadCommand(t *testing.T) {
	e := newEnv(t, true)
	e.fake.SetUpload(testutil.Script[*pb.AddFilesResponse]{
		Items: []*pb.AddFilesResponse{{FilesUploaded: "a.txt"}},
	})

	code, out := e.call(t, "upload_file", `{"paths":"/tmp/a.txt"}`)
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.JSONEq(t, `null`, string(out.Data))
	assert.Equal(t, "/tmp/a.txt", e.fake.LastRequest("AddFiles").(*pb.AddFilesRequest).GetFilesToUpload())
	assert.Equal(t, []any{"a.txt"}, e.recorder.Payloads(relay.EventUploadCompleted))
}

func TestGetUsername(t *testing.T) {
	e := newEnv(t, false)

	code, out := e.call(t, "get_username", ``)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `"ada"`, string(out.Data))
}

func TestGetHFModelInfo(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"found", nil, http.StatusOK},
		{"not found", hub.ErrNotFound, http.StatusNotFound},
		{"invalid id", hub.ErrInvalidModelID, http.StatusBadRequest},
		{"breaker open", hub.ErrUnavailable, http.StatusServiceUnavailable},
		{"upstream error", &hub.StatusError{Code: 500, Body: "boom"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, false)
			e.hub.err = tt.err

			code, out := e.call(t, "get_hf_model_info", `{"model_id":"microsoft/phi-2"}`)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, "microsoft/phi-2", e.hub.last)
			if tt.err == nil {
				assert.JSONEq(t, `"{\"id\":\"microsoft/phi-2\"}"`, string(out.Data))
			} else {
				assert.Equal(t, tt.err.Error(), out.Error)
			}
		})
	}
}

func TestRootAndHealth(t *testing.T) {
	e := newEnv(t, true)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), apihttp.Version)

	w = httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status     string `json:"status"`
		Middleware struct {
			Connected bool   `json:"connected"`
			Target    string `json:"target"`
		} `json:"middleware"`
		System  system.Info                  `json:"system"`
		Metrics *monitoring.MetricsSnapshot `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.Middleware.Connected)
	assert.Equal(t, e.relay.Target(), health.Middleware.Target)
	assert.Equal(t, 4, health.System.CPUs)
	assert.NotNil(t, health.Metrics)
}

func TestCommandsIncludeAliases(t *testing.T) {
	handlers := apihttp.NewHandlers(nil, nil, nil, nil, nil)
	names := handlers.Commands()

	for _, name := range []string{
		"connect_client", "check_pyllm", "rename_chat_session", "remove_chat_session",
		"call_chat", "download_model", "upload_file", "get_username", "get_hf_model_info",
	} {
		assert.Contains(t, names, name)
	}
}
