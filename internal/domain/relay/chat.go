package relay

import (
	"context"
	"errors"
	"io"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

// ChatMessage is one history entry. Keys are capitalized to match what
// the front-end sends.
type ChatMessage struct {
	Role    string `json:"Role"`
	Content string `json:"Content"`
}

// ChatRequest is the input of one chat invocation.
type ChatRequest struct {
	Name      string        `json:"name"`
	Prompt    string        `json:"prompt"`
	History   []ChatMessage `json:"conversation_history"`
	SessionID int32         `json:"sid"`
	Query     *string       `json:"query,omitempty"`
	Files     *string       `json:"files,omitempty"`
}

func (r ChatRequest) proto() *pb.ChatRequest {
	history := make([]*pb.ConversationHistory, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, &pb.ConversationHistory{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return &pb.ChatRequest{
		Name:          r.Name,
		Prompt:        r.Prompt,
		History:       history,
		SessionId:     r.SessionID,
		AttachedFiles: r.Files,
		QueryType:     r.Query,
	}
}

// Chat streams a completion to the UI.
//
// The first received item emits first_word; each item whose JSON payload
// has a string "message" emits new_message. stream-completed is always the
// last event once the stream has been opened. A stream error, a malformed
// payload or a failed new_message emission makes the relay send StopChat
// before stream-completed.
//
// The stream does not inherit ctx cancellation: once opened it runs until
// the middleware ends it.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (err error) {
	client, release, err := s.handle.Acquire()
	if err != nil {
		return err
	}
	defer release()

	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	stream, err := client.Chat(streamCtx, req.proto())
	if err != nil {
		return err
	}

	logger := s.logger.With(
		zap.String("stream", "chat"),
		zap.Int32("session_id", req.SessionID),
	)
	logger.Debug("Chat stream opened", zap.Int("history", len(req.History)))

	s.streamStarted("chat")
	defer func() { s.streamFinished("chat", err) }()

	abort := func(cause error) error {
		stopErr := s.stop(logger, "StopChat", client.StopChat)
		s.complete(logger, EventStreamCompleted, true)
		return withStop(cause, stopErr)
	}

	received := 0
	for {
		resp, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return abort(&superbuilder.StreamError{Op: "Chat", Err: recvErr})
		}

		received++
		if received == 1 {
			if emitErr := s.emit(EventFirstWord, false); emitErr != nil {
				logger.Warn("Failed to emit first word", zap.Error(emitErr))
			}
		}

		text, ok, decodeErr := decodeChatMessage(resp.GetMessage())
		if decodeErr != nil {
			return abort(&superbuilder.DecodeError{
				Op:      "Chat",
				Payload: resp.GetMessage(),
				Err:     decodeErr,
			})
		}
		if !ok {
			continue
		}

		if emitErr := s.emit(EventNewMessage, text); emitErr != nil {
			return abort(emitErr)
		}
	}

	logger.Debug("Chat stream finished", zap.Int("items", received))
	s.complete(logger, EventStreamCompleted, true)
	return nil
}

// decodeChatMessage extracts the "message" string from a chat item payload.
// ok is false when the payload is valid JSON without such a field.
func decodeChatMessage(payload string) (text string, ok bool, err error) {
	var doc any
	if err := sonic.UnmarshalString(payload, &doc); err != nil {
		return "", false, err
	}
	obj, isObject := doc.(map[string]any)
	if !isObject {
		return "", false, nil
	}
	text, ok = obj["message"].(string)
	return text, ok, nil
}
