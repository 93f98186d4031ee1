package superbuilder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

const maxMessageSize = 10 * 1024 * 1024

// Client wraps the gRPC channel to the middleware
type Client struct {
	conn   *grpc.ClientConn
	client pb.SuperBuilderClient
	addr   string

	// Lease bookkeeping, guarded by the owning Handle's mutex.
	leases  int
	retired bool
}

// Dial opens a channel to target and waits until it is ready. The wait is
// bounded by ctx; a channel that fails its first attempt is not retried.
func Dial(ctx context.Context, target string, extra ...grpc.DialOption) (*Client, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                60 * time.Second,
			Timeout:             20 * time.Second,
			PermitWithoutStream: false,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
	}
	opts = append(opts, extra...)

	addr := NormalizeTarget(target)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", addr, err)
	}

	if err := waitReady(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	return &Client{
		conn:   conn,
		client: pb.NewSuperBuilderClient(conn),
		addr:   addr,
	}, nil
}

func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			return fmt.Errorf("channel is %s", state)
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("channel stuck in %s: %w", state, ctx.Err())
		}
	}
}

// NormalizeTarget strips an http(s) scheme, so "http://127.0.0.1:5006"
// dials 127.0.0.1:5006.
func NormalizeTarget(target string) string {
	target = strings.TrimSpace(target)
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(target, scheme) {
			return strings.TrimSuffix(strings.TrimPrefix(target, scheme), "/")
		}
	}
	return target
}

// Addr returns the dialed address
func (c *Client) Addr() string {
	return c.addr
}

// State returns the channel connectivity state
func (c *Client) State() connectivity.State {
	return c.conn.GetState()
}

// Close closes the connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// SayHello probes the middleware's LLM worker.
func (c *Client) SayHello(ctx context.Context, name string) (string, error) {
	resp, err := c.client.SayHelloPyllm(ctx, &pb.SayHelloRequest{Name: name})
	if err != nil {
		return "", &RPCError{Op: "SayHelloPyllm", Err: err}
	}
	return resp.GetMessage(), nil
}

// GetClientConfig fetches the UI configuration for an assistant.
func (c *Client) GetClientConfig(ctx context.Context, assistant string) (string, error) {
	resp, err := c.client.GetClientConfig(ctx, &pb.GetClientConfigRequest{Assistant: assistant})
	if err != nil {
		return "", &RPCError{Op: "GetClientConfig", Err: err}
	}
	return resp.GetData(), nil
}

// SetActiveAssistant updates the assistant and its model set.
func (c *Client) SetActiveAssistant(ctx context.Context, assistant, modelsJSON string) (bool, error) {
	resp, err := c.client.SetActiveAssistant(ctx, &pb.SetActiveAssistantRequest{
		Assistant:  assistant,
		ModelsJson: modelsJSON,
	})
	if err != nil {
		return false, &RPCError{Op: "SetActiveAssistant", Err: err}
	}
	return resp.GetSuccess(), nil
}

// LoadModels asks the middleware to load the active models.
func (c *Client) LoadModels(ctx context.Context) (bool, error) {
	resp, err := c.client.LoadModels(ctx, &pb.LoadModelsRequest{})
	if err != nil {
		return false, &RPCError{Op: "LoadModels", Err: err}
	}
	return resp.GetStatus(), nil
}

// GetChatHistory returns the serialized chat history.
func (c *Client) GetChatHistory(ctx context.Context) (string, error) {
	resp, err := c.client.GetChatHistory(ctx, &pb.GetChatHistoryRequest{})
	if err != nil {
		return "", &RPCError{Op: "GetChatHistory", Err: err}
	}
	return resp.GetData(), nil
}

// SetSessionName renames a chat session.
func (c *Client) SetSessionName(ctx context.Context, sessionID int32, name string) (bool, error) {
	resp, err := c.client.SetSessionName(ctx, &pb.SetSessionNameRequest{
		SessionId:   sessionID,
		SessionName: name,
	})
	if err != nil {
		return false, &RPCError{Op: "SetSessionName", Err: err}
	}
	return resp.GetSuccess(), nil
}

// RemoveSession deletes a chat session.
func (c *Client) RemoveSession(ctx context.Context, sessionID int32) (bool, error) {
	resp, err := c.client.RemoveSession(ctx, &pb.RemoveSessionRequest{SessionId: sessionID})
	if err != nil {
		return false, &RPCError{Op: "RemoveSession", Err: err}
	}
	return resp.GetSuccess(), nil
}

// AddSingleQuery stores one prompt/response pair in a session.
func (c *Client) AddSingleQuery(ctx context.Context, sessionID int32, prompt, response string, name *string) (bool, error) {
	resp, err := c.client.AddSingleQuery(ctx, &pb.AddSingleQueryRequest{
		SessionId: sessionID,
		Prompt:    prompt,
		Response:  response,
		Name:      name,
	})
	if err != nil {
		return false, &RPCError{Op: "AddSingleQuery", Err: err}
	}
	return resp.GetSuccess(), nil
}

// GetFileList lists files known to the middleware, filtered by type.
func (c *Client) GetFileList(ctx context.Context, fileType string) (string, error) {
	resp, err := c.client.GetFileList(ctx, &pb.GetFileListRequest{FileType: fileType})
	if err != nil {
		return "", &RPCError{Op: "GetFileList", Err: err}
	}
	return resp.GetFileList(), nil
}

// RemoveFiles deletes files from the middleware's store.
func (c *Client) RemoveFiles(ctx context.Context, files string) (string, error) {
	resp, err := c.client.RemoveFiles(ctx, &pb.RemoveFilesRequest{FilesToRemove: files})
	if err != nil {
		return "", &RPCError{Op: "RemoveFiles", Err: err}
	}
	return resp.GetFilesRemoved(), nil
}

// StopChat asks the middleware to stop generating.
func (c *Client) StopChat(ctx context.Context) error {
	if _, err := c.client.StopChat(ctx, &pb.StopChatRequest{}); err != nil {
		return &RPCError{Op: "StopChat", Err: err}
	}
	return nil
}

// StopAddFiles asks the middleware to stop an upload.
func (c *Client) StopAddFiles(ctx context.Context) error {
	if _, err := c.client.StopAddFiles(ctx, &pb.StopAddFilesRequest{}); err != nil {
		return &RPCError{Op: "StopAddFiles", Err: err}
	}
	return nil
}

// Chat opens a chat stream.
func (c *Client) Chat(ctx context.Context, req *pb.ChatRequest) (pb.SuperBuilder_ChatClient, error) {
	stream, err := c.client.Chat(ctx, req)
	if err != nil {
		return nil, &RPCError{Op: "Chat", Err: err}
	}
	return stream, nil
}

// DownloadFiles opens a download progress stream.
func (c *Client) DownloadFiles(ctx context.Context, req *pb.DownloadFilesRequest) (pb.SuperBuilder_DownloadFilesClient, error) {
	stream, err := c.client.DownloadFiles(ctx, req)
	if err != nil {
		return nil, &RPCError{Op: "DownloadFiles", Err: err}
	}
	return stream, nil
}

// AddFiles opens an upload progress stream.
func (c *Client) AddFiles(ctx context.Context, req *pb.AddFilesRequest) (pb.SuperBuilder_AddFilesClient, error) {
	stream, err := c.client.AddFiles(ctx, req)
	if err != nil {
		return nil, &RPCError{Op: "AddFiles", Err: err}
	}
	return stream, nil
}
