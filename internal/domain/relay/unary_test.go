package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/testutil"
	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

func TestOperationsBeforeConnect(t *testing.T) {
	f := newDisconnected(t)
	ctx := context.Background()

	ops := map[string]func() error{
		"get_config": func() error {
			_, err := f.svc.GetConfig(ctx, "default")
			return err
		},
		"load_models": func() error {
			_, err := f.svc.LoadModels(ctx)
			return err
		},
		"update_db_models": func() error {
			_, err := f.svc.UpdateDBModels(ctx, "default", "[]")
			return err
		},
		"check_health": func() error {
			_, err := f.svc.CheckHealth(ctx)
			return err
		},
		"get_chat_history": func() error {
			_, err := f.svc.GetChatHistory(ctx)
			return err
		},
		"rename_session": func() error {
			_, err := f.svc.RenameSession(ctx, 1, "x")
			return err
		},
		"remove_session": func() error {
			_, err := f.svc.RemoveSession(ctx, 1)
			return err
		},
		"add_single_query": func() error {
			_, err := f.svc.AddSingleQuery(ctx, 1, "p", "r", nil)
			return err
		},
		"get_file_list": func() error {
			_, err := f.svc.GetFileList(ctx, "")
			return err
		},
		"remove_file": func() error {
			_, err := f.svc.RemoveFiles(ctx, "a.txt")
			return err
		},
		"stop_chat": func() error {
			return f.svc.StopChat(ctx)
		},
		"stop_upload_file": func() error {
			return f.svc.StopUpload(ctx)
		},
		"call_chat": func() error {
			return f.svc.Chat(ctx, ChatRequest{Prompt: "hi"})
		},
		"download_model": func() error {
			_, err := f.svc.Download(ctx, DownloadRequest{FileURL: "u"})
			return err
		},
		"upload_file": func() error {
			return f.svc.Upload(ctx, "a.txt")
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			assert.ErrorIs(t, err, superbuilder.ErrNotInitialized)
			assert.Equal(t, "client not initialized", err.Error())
		})
	}

	assert.Equal(t, 0, f.fake.TotalCalls())
	assert.Empty(t, f.recorder.Events())
}

func TestConnect(t *testing.T) {
	f := newDisconnected(t)

	msg, err := f.svc.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Connected", msg)
	assert.True(t, f.svc.Handle().Connected())

	assert.Equal(t, []string{EventMiddlewareConnected}, f.recorder.Names())
	assert.Equal(t, []any{testutil.Target("middleware")}, f.recorder.Payloads(EventMiddlewareConnected))
}

func TestConnectFailure(t *testing.T) {
	f := newDisconnected(t)
	f.svc.cfg.Target = testutil.Target("nowhere")

	msg, err := f.svc.Connect(context.Background())
	assert.Empty(t, msg)
	assert.ErrorIs(t, err, superbuilder.ErrConnection)
	assert.False(t, f.svc.Handle().Connected())
	assert.Empty(t, f.recorder.Events())
}

func TestConnectAnnounceFailureIsIgnored(t *testing.T) {
	f := newDisconnected(t)
	f.recorder.FailOn(EventMiddlewareConnected, errors.New("no window"))

	msg, err := f.svc.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Connected", msg)
}

func TestUnaryOperations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fake.SetReplies(testutil.Replies{
		Hello:           "pong",
		Config:          `{"assistant":"chat"}`,
		ActiveAssistant: true,
		LoadModels:      true,
		ChatHistory:     `[{"sid":1}]`,
		SessionName:     true,
		RemoveSession:   true,
		AddSingleQuery:  true,
		FileList:        `["a.pdf"]`,
		FilesRemoved:    "a.pdf",
	})

	config, err := f.svc.GetConfig(ctx, "chat")
	require.NoError(t, err)
	assert.Equal(t, `{"assistant":"chat"}`, config)
	assert.Equal(t, "chat", f.fake.LastRequest("GetClientConfig").(*pb.GetClientConfigRequest).GetAssistant())

	loaded, err := f.svc.LoadModels(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)

	updated, err := f.svc.UpdateDBModels(ctx, "chat", `[{"name":"m"}]`)
	require.NoError(t, err)
	assert.True(t, updated)
	setReq := f.fake.LastRequest("SetActiveAssistant").(*pb.SetActiveAssistantRequest)
	assert.Equal(t, "chat", setReq.GetAssistant())
	assert.Equal(t, `[{"name":"m"}]`, setReq.GetModelsJson())

	hello, err := f.svc.CheckHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pong", hello)
	assert.Equal(t, HealthCheckName, f.fake.LastRequest("SayHelloPyllm").(*pb.SayHelloRequest).GetName())

	history, err := f.svc.GetChatHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"sid":1}]`, history)

	renamed, err := f.svc.RenameSession(ctx, 42, "Trip plans")
	require.NoError(t, err)
	assert.True(t, renamed)
	renameReq := f.fake.LastRequest("SetSessionName").(*pb.SetSessionNameRequest)
	assert.Equal(t, int32(42), renameReq.GetSessionId())
	assert.Equal(t, "Trip plans", renameReq.GetSessionName())

	removed, err := f.svc.RemoveSession(ctx, 42)
	require.NoError(t, err)
	assert.True(t, removed)

	name := "summary"
	added, err := f.svc.AddSingleQuery(ctx, 3, "prompt", "response", &name)
	require.NoError(t, err)
	assert.True(t, added)
	addReq := f.fake.LastRequest("AddSingleQuery").(*pb.AddSingleQueryRequest)
	assert.Equal(t, int32(3), addReq.GetSessionId())
	assert.Equal(t, "summary", addReq.GetName())

	_, err = f.svc.AddSingleQuery(ctx, 3, "prompt", "response", nil)
	require.NoError(t, err)
	assert.Nil(t, f.fake.LastRequest("AddSingleQuery").(*pb.AddSingleQueryRequest).Name)

	files, err := f.svc.GetFileList(ctx, "pdf")
	require.NoError(t, err)
	assert.Equal(t, `["a.pdf"]`, files)
	assert.Equal(t, "pdf", f.fake.LastRequest("GetFileList").(*pb.GetFileListRequest).GetFileType())

	report, err := f.svc.RemoveFiles(ctx, "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", report)

	require.NoError(t, f.svc.StopChat(ctx))
	require.NoError(t, f.svc.StopUpload(ctx))

	for _, method := range []string{
		"GetClientConfig", "LoadModels", "SetActiveAssistant", "SayHelloPyllm",
		"GetChatHistory", "SetSessionName", "RemoveSession", "GetFileList",
		"RemoveFiles", "StopChat", "StopAddFiles",
	} {
		assert.Equal(t, 1, f.fake.Calls(method), method)
	}
	assert.Equal(t, 2, f.fake.Calls("AddSingleQuery"))
	assert.Empty(t, f.recorder.Events())
}

func TestUnaryFalseReplyIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.fake.SetReplies(testutil.Replies{})

	ok, err := f.svc.UpdateDBModels(context.Background(), "chat", "[]")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnaryRPCFailure(t *testing.T) {
	f := newFixture(t)
	f.fake.Fail("LoadModels", status.Error(codes.Internal, "model store unavailable"))

	_, err := f.svc.LoadModels(context.Background())
	require.Error(t, err)

	var rpcErr *superbuilder.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "LoadModels", rpcErr.Op)
	assert.Contains(t, err.Error(), "model store unavailable")
	assert.Equal(t, 1, f.fake.Calls("LoadModels"))
}

func TestUnaryIgnoresCallerCancellation(t *testing.T) {
	f := newFixture(t)
	f.svc.cfg.RPCTimeout = 0

	ctx, cancel := context.WithCancel(context.Background())
	var serverErr error
	f.fake.OnCall("LoadModels", func(rpcCtx context.Context) {
		cancel()
		select {
		case <-rpcCtx.Done():
		case <-time.After(200 * time.Millisecond):
		}
		serverErr = rpcCtx.Err()
	})

	ok, err := f.svc.LoadModels(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, serverErr)
	assert.Equal(t, 1, f.fake.Calls("LoadModels"))
}

func TestUnaryTimeoutWhenConfigured(t *testing.T) {
	f := newFixture(t)
	f.svc.cfg.RPCTimeout = 50 * time.Millisecond
	f.fake.OnCall("GetChatHistory", func(ctx context.Context) { <-ctx.Done() })

	_, err := f.svc.GetChatHistory(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.DeadlineExceeded, status.Code(errors.Unwrap(err)))
	assert.Equal(t, 1, f.fake.Calls("GetChatHistory"))
}
