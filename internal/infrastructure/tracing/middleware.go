package tracing

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/superbuilder/coreui/backend/internal/shared/id"
)

// HTTPMiddleware creates Gin middleware for HTTP tracing
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithTrace(c.Request.Context(),
			id.TraceID(c.GetHeader(TraceHeader)),
			id.SpanID(c.GetHeader(SpanHeader)),
		)

		name := c.FullPath()
		if name == "" {
			name = c.Request.URL.Path
		}

		requestID := c.GetHeader(RequestHeader)
		if requestID == "" {
			requestID = id.NewRequestID().String()
		}

		span, ctx := tracer.StartSpan(ctx, c.Request.Method+" "+name)
		span.SetTag("request_id", requestID)
		span.SetTag("http.method", c.Request.Method)
		span.SetTag("http.path", c.Request.URL.Path)
		if command := c.Param("name"); command != "" {
			span.SetTag("command", command)
		}

		c.Request = c.Request.WithContext(ctx)

		c.Header(TraceHeader, span.TraceID.String())
		c.Header(SpanHeader, span.SpanID.String())
		c.Header(RequestHeader, requestID)

		c.Next()

		span.SetStatus(c.Writer.Status())
		span.SetTag("http.status", strconv.Itoa(c.Writer.Status()))
		if len(c.Errors) > 0 {
			span.SetError(c.Errors.Last())
		}

		span.Finish()
		tracer.Submit(span)
	}
}

// inject starts a client span for method and puts its trace context into
// the outgoing metadata.
func inject(ctx context.Context, tracer *Tracer, method string) (*Span, context.Context) {
	span, ctx := tracer.StartSpan(ctx, method)
	span.SetTag("rpc.system", "grpc")
	span.SetTag("rpc.method", method)
	span.SetTag("span.kind", "client")

	ctx = metadata.AppendToOutgoingContext(ctx,
		strings.ToLower(TraceHeader), span.TraceID.String(),
		strings.ToLower(SpanHeader), span.SpanID.String(),
	)
	return span, ctx
}

func finish(tracer *Tracer, span *Span, err error) {
	if err != nil {
		span.SetTag("rpc.code", status.Code(err).String())
		span.SetError(err)
	} else {
		span.SetStatus(200)
	}
	span.Finish()
	tracer.Submit(span)
}

// GRPCClientInterceptor propagates trace context on unary middleware calls
func GRPCClientInterceptor(tracer *Tracer) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		span, ctx := inject(ctx, tracer, method)
		err := invoker(ctx, method, req, reply, cc, opts...)
		finish(tracer, span, err)
		return err
	}
}

// GRPCStreamClientInterceptor propagates trace context on streaming calls.
// The span ends when the stream does.
func GRPCStreamClientInterceptor(tracer *Tracer) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		span, ctx := inject(ctx, tracer, method)
		span.SetTag("rpc.streaming", "true")

		stream, err := streamer(ctx, desc, cc, method, opts...)
		if err != nil {
			finish(tracer, span, err)
			return nil, err
		}
		return &tracedClientStream{ClientStream: stream, tracer: tracer, span: span}, nil
	}
}

type tracedClientStream struct {
	grpc.ClientStream
	tracer *Tracer
	span   *Span
	once   sync.Once
	items  int
}

func (s *tracedClientStream) RecvMsg(m any) error {
	err := s.ClientStream.RecvMsg(m)
	if err == nil {
		s.items++
		return nil
	}
	s.once.Do(func() {
		s.span.SetTag("rpc.items", strconv.Itoa(s.items))
		if errors.Is(err, io.EOF) {
			finish(s.tracer, s.span, nil)
			return
		}
		finish(s.tracer, s.span, err)
	})
	return err
}
