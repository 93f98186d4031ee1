package monitoring

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryClientInterceptor records latency and status of unary middleware calls
func UnaryClientInterceptor(metrics *Metrics) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		metrics.recordRPC(method, err, time.Since(start))
		return err
	}
}

// StreamClientInterceptor records server-streaming calls. The call is
// recorded when the stream ends, fails or fails to open.
func StreamClientInterceptor(metrics *Metrics) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		start := time.Now()
		stream, err := streamer(ctx, desc, cc, method, opts...)
		if err != nil {
			metrics.recordRPC(method, err, time.Since(start))
			return nil, err
		}
		return &monitoredClientStream{
			ClientStream: stream,
			finish: func(err error) {
				metrics.recordRPC(method, err, time.Since(start))
			},
		}, nil
	}
}

type monitoredClientStream struct {
	grpc.ClientStream
	once   sync.Once
	finish func(error)
}

func (s *monitoredClientStream) RecvMsg(m any) error {
	err := s.ClientStream.RecvMsg(m)
	if err != nil {
		s.once.Do(func() {
			if errors.Is(err, io.EOF) {
				s.finish(nil)
				return
			}
			s.finish(err)
		})
	}
	return err
}

func (m *Metrics) recordRPC(fullMethod string, err error, duration time.Duration) {
	service, method := SplitMethod(fullMethod)
	code := status.Code(err)
	m.RecordGRPCCall(service, method, code.String(), duration)
	if err != nil {
		m.RecordGRPCError(service, method, code.String())
	}
}

// SplitMethod splits "/pkg.Service/Method" into service and method names
func SplitMethod(fullMethod string) (string, string) {
	trimmed := strings.TrimPrefix(fullMethod, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[:i], trimmed[i+1:]
	}
	return "unknown", trimmed
}
