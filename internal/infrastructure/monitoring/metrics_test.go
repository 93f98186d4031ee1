package monitoring

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSplitMethod(t *testing.T) {
	tests := []struct {
		in          string
		wantService string
		wantMethod  string
	}{
		{"/super_builder.SuperBuilder/Chat", "super_builder.SuperBuilder", "Chat"},
		{"/svc/Method", "svc", "Method"},
		{"Method", "unknown", "Method"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			service, method := SplitMethod(tt.in)
			assert.Equal(t, tt.wantService, service)
			assert.Equal(t, tt.wantMethod, method)
		})
	}
}

func TestStreamAccounting(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.StreamStarted("chat")
	m.StreamStarted("upload")
	assert.Equal(t, int64(2), m.Snapshot().ActiveStreams)

	m.StreamFinished("chat", "ok")
	m.StreamFinished("upload", "stream_error")

	assert.Equal(t, int64(0), m.Snapshot().ActiveStreams)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.StreamsActive.WithLabelValues("chat")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StreamsTotal.WithLabelValues("upload", "stream_error")))
}

func TestRecordStopHandshakeAndEvents(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordStopHandshake("StopChat", true)
	m.RecordStopHandshake("StopChat", false)
	m.RecordEvent("new_message")
	m.RecordEvent("new_message")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.StopHandshakes.WithLabelValues("StopChat", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StopHandshakes.WithLabelValues("StopChat", "error")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.EventsEmitted.WithLabelValues("new_message")))
	assert.Equal(t, int64(2), m.Snapshot().EventsEmitted)
}

func TestUnaryClientInterceptor(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	interceptor := UnaryClientInterceptor(m)

	method := "/super_builder.SuperBuilder/LoadModels"
	ok := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return nil
	}
	fail := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unavailable, "down")
	}

	require.NoError(t, interceptor(context.Background(), method, nil, nil, nil, ok))
	require.Error(t, interceptor(context.Background(), method, nil, nil, nil, fail))

	svc := "super_builder.SuperBuilder"
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GRPCCalls.WithLabelValues(svc, "LoadModels", "OK")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GRPCCalls.WithLabelValues(svc, "LoadModels", "Unavailable")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GRPCErrors.WithLabelValues(svc, "LoadModels", "Unavailable")))
}

type scriptedStream struct {
	grpc.ClientStream
	errs []error
}

func (s *scriptedStream) RecvMsg(any) error {
	err := s.errs[0]
	s.errs = s.errs[1:]
	return err
}

func TestStreamClientInterceptorRecordsOnce(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	interceptor := StreamClientInterceptor(m)

	streamer := func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return &scriptedStream{errs: []error{nil, io.EOF, io.EOF}}, nil
	}

	stream, err := interceptor(context.Background(), &grpc.StreamDesc{ServerStreams: true}, nil, "/super_builder.SuperBuilder/Chat", streamer)
	require.NoError(t, err)

	require.NoError(t, stream.RecvMsg(nil))
	assert.ErrorIs(t, stream.RecvMsg(nil), io.EOF)
	assert.ErrorIs(t, stream.RecvMsg(nil), io.EOF)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.GRPCCalls.WithLabelValues("super_builder.SuperBuilder", "Chat", "OK")))
}

func TestStreamClientInterceptorOpenFailure(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	interceptor := StreamClientInterceptor(m)

	streamer := func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return nil, errors.New("boom")
	}

	_, err := interceptor(context.Background(), &grpc.StreamDesc{}, nil, "/super_builder.SuperBuilder/AddFiles", streamer)
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GRPCErrors.WithLabelValues("super_builder.SuperBuilder", "AddFiles", "Unknown")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(nil)

	router := gin.New()
	router.Use(Middleware(m))
	router.POST("/commands/:name", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/commands/load_models", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/commands/:name", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, int64(1), m.Snapshot().TotalErrors)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "coreui_http_requests_total"))
	assert.True(t, strings.Contains(w.Body.String(), "coreui_uptime_seconds"))
}

func TestTimerNilMetrics(t *testing.T) {
	timer := NewTimer(nil, "hub", "model_info")
	time.Sleep(time.Millisecond)
	assert.NotPanics(t, func() { timer.Stop("success") })
}
