// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

const bufSize = 1024 * 1024

// Network routes in-process gRPC dials to bufconn listeners by name.
type Network struct {
	mu        sync.Mutex
	listeners map[string]*bufconn.Listener
}

// NewNetwork creates an empty in-process network.
func NewNetwork() *Network {
	return &Network{listeners: make(map[string]*bufconn.Listener)}
}

// Serve starts srv under name and returns the dial target for it. The
// server is stopped when the test ends.
func (n *Network) Serve(t *testing.T, name string, srv pb.SuperBuilderServer) string {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	pb.RegisterSuperBuilderServer(server, srv)

	n.mu.Lock()
	n.listeners[name] = lis
	n.mu.Unlock()

	go func() {
		_ = server.Serve(lis)
	}()

	t.Cleanup(func() {
		server.Stop()
		n.mu.Lock()
		delete(n.listeners, name)
		n.mu.Unlock()
	})

	return Target(name)
}

// Dialer returns the dial option that connects through this network.
// Dialing an unknown name fails immediately.
func (n *Network) Dialer() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
		n.mu.Lock()
		lis, ok := n.listeners[addr]
		n.mu.Unlock()
		if !ok {
			return nil, fmt.Errorf("no fake middleware listening on %q", addr)
		}
		return lis.DialContext(ctx)
	})
}

// Target builds the dial target for a served name.
func Target(name string) string {
	return "passthrough:///" + name
}

// Script describes one server stream: Items are sent in order, then Err
// is returned. With Hold the stream stays open after Items until the
// client goes away.
type Script[T any] struct {
	Items []T
	Err   error
	Hold  bool
}

// Replies holds the unary answers of a FakeMiddleware.
type Replies struct {
	Hello           string
	Config          string
	ActiveAssistant bool
	LoadModels      bool
	ChatHistory     string
	SessionName     bool
	RemoveSession   bool
	AddSingleQuery  bool
	FileList        string
	FilesRemoved    string
}

// FakeMiddleware is a scriptable SuperBuilder server.
type FakeMiddleware struct {
	pb.UnimplementedSuperBuilderServer

	mu        sync.Mutex
	replies   Replies
	errs      map[string]error
	hooks     map[string]func(context.Context)
	calls     map[string]int
	requests  map[string]any
	cancelled map[string]int

	chat     Script[*pb.ChatResponse]
	download Script[*pb.DownloadFilesResponse]
	upload   Script[*pb.AddFilesResponse]
}

// NewFakeMiddleware creates a fake with default replies.
func NewFakeMiddleware() *FakeMiddleware {
	return &FakeMiddleware{
		replies: Replies{
			Hello:           "Hello CoreUI",
			Config:          `{"ActiveAssistant":"default"}`,
			ActiveAssistant: true,
			LoadModels:      true,
			ChatHistory:     "[]",
			SessionName:     true,
			RemoveSession:   true,
			AddSingleQuery:  true,
			FileList:        "[]",
			FilesRemoved:    "",
		},
		errs:      make(map[string]error),
		hooks:     make(map[string]func(context.Context)),
		calls:     make(map[string]int),
		requests:  make(map[string]any),
		cancelled: make(map[string]int),
	}
}

// SetReplies replaces the unary answers.
func (f *FakeMiddleware) SetReplies(r Replies) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = r
}

// Fail makes method return err.
func (f *FakeMiddleware) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

// OnCall runs fn at the start of every call to method.
func (f *FakeMiddleware) OnCall(method string, fn func(context.Context)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[method] = fn
}

// SetChat scripts the Chat stream.
func (f *FakeMiddleware) SetChat(s Script[*pb.ChatResponse]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chat = s
}

// SetDownload scripts the DownloadFiles stream.
func (f *FakeMiddleware) SetDownload(s Script[*pb.DownloadFilesResponse]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.download = s
}

// SetUpload scripts the AddFiles stream.
func (f *FakeMiddleware) SetUpload(s Script[*pb.AddFilesResponse]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upload = s
}

// Calls returns how many times method was invoked.
func (f *FakeMiddleware) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// TotalCalls returns the number of invocations across all methods.
func (f *FakeMiddleware) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// LastRequest returns the last request received by method, or nil.
func (f *FakeMiddleware) LastRequest(method string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[method]
}

// Cancelled returns how many held streams of method were cancelled by the client.
func (f *FakeMiddleware) Cancelled(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled[method]
}

func (f *FakeMiddleware) enter(ctx context.Context, method string, req any) (Replies, error) {
	f.mu.Lock()
	f.calls[method]++
	f.requests[method] = req
	hook := f.hooks[method]
	replies := f.replies
	err := f.errs[method]
	f.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}
	return replies, err
}

func play[T any](ctx context.Context, f *FakeMiddleware, method string, script Script[T], send func(T) error) error {
	for _, item := range script.Items {
		if err := send(item); err != nil {
			return err
		}
	}
	if script.Err != nil {
		return script.Err
	}
	if script.Hold {
		<-ctx.Done()
		f.mu.Lock()
		f.cancelled[method]++
		f.mu.Unlock()
		return ctx.Err()
	}
	return nil
}

func (f *FakeMiddleware) SayHelloPyllm(ctx context.Context, req *pb.SayHelloRequest) (*pb.SayHelloResponse, error) {
	r, err := f.enter(ctx, "SayHelloPyllm", req)
	if err != nil {
		return nil, err
	}
	return &pb.SayHelloResponse{Message: r.Hello}, nil
}

func (f *FakeMiddleware) GetClientConfig(ctx context.Context, req *pb.GetClientConfigRequest) (*pb.GetClientConfigResponse, error) {
	r, err := f.enter(ctx, "GetClientConfig", req)
	if err != nil {
		return nil, err
	}
	return &pb.GetClientConfigResponse{Data: r.Config}, nil
}

func (f *FakeMiddleware) SetActiveAssistant(ctx context.Context, req *pb.SetActiveAssistantRequest) (*pb.SetActiveAssistantResponse, error) {
	r, err := f.enter(ctx, "SetActiveAssistant", req)
	if err != nil {
		return nil, err
	}
	return &pb.SetActiveAssistantResponse{Success: r.ActiveAssistant}, nil
}

func (f *FakeMiddleware) LoadModels(ctx context.Context, req *pb.LoadModelsRequest) (*pb.LoadModelsResponse, error) {
	r, err := f.enter(ctx, "LoadModels", req)
	if err != nil {
		return nil, err
	}
	return &pb.LoadModelsResponse{Status: r.LoadModels}, nil
}

func (f *FakeMiddleware) GetChatHistory(ctx context.Context, req *pb.GetChatHistoryRequest) (*pb.GetChatHistoryResponse, error) {
	r, err := f.enter(ctx, "GetChatHistory", req)
	if err != nil {
		return nil, err
	}
	return &pb.GetChatHistoryResponse{Data: r.ChatHistory}, nil
}

func (f *FakeMiddleware) SetSessionName(ctx context.Context, req *pb.SetSessionNameRequest) (*pb.SetSessionNameResponse, error) {
	r, err := f.enter(ctx, "SetSessionName", req)
	if err != nil {
		return nil, err
	}
	return &pb.SetSessionNameResponse{Success: r.SessionName}, nil
}

func (f *FakeMiddleware) RemoveSession(ctx context.Context, req *pb.RemoveSessionRequest) (*pb.RemoveSessionResponse, error) {
	r, err := f.enter(ctx, "RemoveSession", req)
	if err != nil {
		return nil, err
	}
	return &pb.RemoveSessionResponse{Success: r.RemoveSession}, nil
}

func (f *FakeMiddleware) AddSingleQuery(ctx context.Context, req *pb.AddSingleQueryRequest) (*pb.AddSingleQueryResponse, error) {
	r, err := f.enter(ctx, "AddSingleQuery", req)
	if err != nil {
		return nil, err
	}
	return &pb.AddSingleQueryResponse{Success: r.AddSingleQuery}, nil
}

func (f *FakeMiddleware) GetFileList(ctx context.Context, req *pb.GetFileListRequest) (*pb.GetFileListResponse, error) {
	r, err := f.enter(ctx, "GetFileList", req)
	if err != nil {
		return nil, err
	}
	return &pb.GetFileListResponse{FileList: r.FileList}, nil
}

func (f *FakeMiddleware) RemoveFiles(ctx context.Context, req *pb.RemoveFilesRequest) (*pb.RemoveFilesResponse, error) {
	r, err := f.enter(ctx, "RemoveFiles", req)
	if err != nil {
		return nil, err
	}
	return &pb.RemoveFilesResponse{FilesRemoved: r.FilesRemoved}, nil
}

func (f *FakeMiddleware) StopChat(ctx context.Context, req *pb.StopChatRequest) (*pb.StopChatResponse, error) {
	if _, err := f.enter(ctx, "StopChat", req); err != nil {
		return nil, err
	}
	return &pb.StopChatResponse{}, nil
}

func (f *FakeMiddleware) StopAddFiles(ctx context.Context, req *pb.StopAddFilesRequest) (*pb.StopAddFilesResponse, error) {
	if _, err := f.enter(ctx, "StopAddFiles", req); err != nil {
		return nil, err
	}
	return &pb.StopAddFilesResponse{}, nil
}

func (f *FakeMiddleware) Chat(req *pb.ChatRequest, stream grpc.ServerStreamingServer[pb.ChatResponse]) error {
	ctx := stream.Context()
	if _, err := f.enter(ctx, "Chat", req); err != nil {
		return err
	}
	f.mu.Lock()
	script := f.chat
	f.mu.Unlock()
	return play(ctx, f, "Chat", script, stream.Send)
}

func (f *FakeMiddleware) DownloadFiles(req *pb.DownloadFilesRequest, stream grpc.ServerStreamingServer[pb.DownloadFilesResponse]) error {
	ctx := stream.Context()
	if _, err := f.enter(ctx, "DownloadFiles", req); err != nil {
		return err
	}
	f.mu.Lock()
	script := f.download
	f.mu.Unlock()
	return play(ctx, f, "DownloadFiles", script, stream.Send)
}

func (f *FakeMiddleware) AddFiles(req *pb.AddFilesRequest, stream grpc.ServerStreamingServer[pb.AddFilesResponse]) error {
	ctx := stream.Context()
	if _, err := f.enter(ctx, "AddFiles", req); err != nil {
		return err
	}
	f.mu.Lock()
	script := f.upload
	f.mu.Unlock()
	return play(ctx, f, "AddFiles", script, stream.Send)
}

// ChatItems builds chat stream items from raw payload strings.
func ChatItems(payloads ...string) []*pb.ChatResponse {
	items := make([]*pb.ChatResponse, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, &pb.ChatResponse{Message: p})
	}
	return items
}
