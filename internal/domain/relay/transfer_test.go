package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/testutil"
	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

func strPtr(s string) *string {
	return &s
}

func TestDownloadReturnsFirstCompletedFile(t *testing.T) {
	f := newFixture(t)
	f.fake.SetDownload(testutil.Script[*pb.DownloadFilesResponse]{
		Items: []*pb.DownloadFilesResponse{
			{Progress: 10, FileDownloaded: "part-1"},
			{Progress: 100, FileDownloaded: "final.bin"},
			{Progress: 100, FileDownloaded: "other.bin"},
		},
		Hold: true,
	})

	file, err := f.svc.Download(context.Background(), DownloadRequest{
		FileURL:   "https://huggingface.co/org/model",
		LocalPath: "/models",
		TokenID:   strPtr("hf_token"),
	})
	require.NoError(t, err)
	assert.Equal(t, "final.bin", file)

	assert.Equal(t, []testutil.Event{
		{Name: EventDownloadProgress, Payload: DownloadProgress{URL: "https://huggingface.co/org/model", Progress: 10, File: "part-1"}},
		{Name: EventDownloadProgress, Payload: DownloadProgress{URL: "https://huggingface.co/org/model", Progress: 100, File: "final.bin"}},
		{Name: EventDownloadCompleted, Payload: DownloadResult{URL: "https://huggingface.co/org/model", File: "final.bin", Success: true}},
	}, f.recorder.Events())

	req := f.fake.LastRequest("DownloadFiles").(*pb.DownloadFilesRequest)
	assert.Equal(t, "/models", req.GetLocalPath())
	assert.Equal(t, "hf_token", req.GetTokenId())

	// The rest of the stream is released rather than drained.
	assert.Eventually(t, func() bool {
		return f.fake.Cancelled("DownloadFiles") == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDownloadIncomplete(t *testing.T) {
	f := newFixture(t)
	f.fake.SetDownload(testutil.Script[*pb.DownloadFilesResponse]{
		Items: []*pb.DownloadFilesResponse{
			{Progress: 10, FileDownloaded: "partial"},
			{Progress: 50, FileDownloaded: "partial"},
		},
	})

	file, err := f.svc.Download(context.Background(), DownloadRequest{FileURL: "u"})
	assert.Empty(t, file)

	var dlErr *superbuilder.IncompleteDownloadError
	require.True(t, errors.As(err, &dlErr))
	assert.Equal(t, "partial", dlErr.File)
	assert.Equal(t, "download ended before completion: partial", err.Error())

	assert.Equal(t, 2, f.recorder.Count(EventDownloadProgress))
	assert.Equal(t, []any{DownloadResult{URL: "u", File: "partial", Success: false}}, f.recorder.Payloads(EventDownloadCompleted))
	assert.Equal(t, float64(1), promtest.ToFloat64(f.metrics.StreamsTotal.WithLabelValues("download", "incomplete")))
}

func TestDownloadEmptyStream(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Download(context.Background(), DownloadRequest{FileURL: "u"})

	var dlErr *superbuilder.IncompleteDownloadError
	require.True(t, errors.As(err, &dlErr))
	assert.Empty(t, dlErr.File)
	assert.Equal(t, []string{EventDownloadCompleted}, f.recorder.Names())
}

func TestDownloadStreamError(t *testing.T) {
	f := newFixture(t)
	f.fake.SetDownload(testutil.Script[*pb.DownloadFilesResponse]{
		Items: []*pb.DownloadFilesResponse{{Progress: 30, FileDownloaded: "shard-1"}},
		Err:   status.Error(codes.PermissionDenied, "token rejected"),
	})

	_, err := f.svc.Download(context.Background(), DownloadRequest{FileURL: "u"})

	var streamErr *superbuilder.StreamError
	require.True(t, errors.As(err, &streamErr))
	assert.Equal(t, "DownloadFiles", streamErr.Op)
	assert.Contains(t, err.Error(), "token rejected")

	assert.Equal(t, []string{EventDownloadProgress, EventDownloadCompleted}, f.recorder.Names())
	assert.Equal(t, []any{DownloadResult{URL: "u", File: "shard-1", Success: false}}, f.recorder.Payloads(EventDownloadCompleted))
	assert.Equal(t, 0, f.fake.Calls("StopChat"))
	assert.Equal(t, 0, f.fake.Calls("StopAddFiles"))
}

func TestDownloadEmitFailure(t *testing.T) {
	f := newFixture(t)
	f.recorder.FailOn(EventDownloadProgress, errors.New("window closed"))
	f.fake.SetDownload(testutil.Script[*pb.DownloadFilesResponse]{
		Items: []*pb.DownloadFilesResponse{{Progress: 100, FileDownloaded: "final.bin"}},
		Hold:  true,
	})

	file, err := f.svc.Download(context.Background(), DownloadRequest{FileURL: "u"})
	assert.Empty(t, file)
	assert.ErrorIs(t, err, ErrEmit)
	assert.Equal(t, 1, f.recorder.Count(EventDownloadCompleted))
}

func TestUploadRelaysProgress(t *testing.T) {
	f := newFixture(t)
	f.fake.SetUpload(testutil.Script[*pb.AddFilesResponse]{
		Items: []*pb.AddFilesResponse{
			{FilesUploaded: "", CurrentFileUploading: strPtr("a.txt"), CurrentFileProgress: strPtr("40%")},
			{FilesUploaded: "a.txt", CurrentFileUploading: strPtr("b.txt")},
			{FilesUploaded: "a.txt,b.txt"},
		},
	})

	require.NoError(t, f.svc.Upload(context.Background(), "a.txt,b.txt"))

	assert.Equal(t, []testutil.Event{
		{Name: EventUploadProgress, Payload: UploadProgress{FilesUploaded: "", CurrentFileUploading: "a.txt", CurrentFileProgress: "40%"}},
		{Name: EventUploadProgress, Payload: UploadProgress{FilesUploaded: "a.txt", CurrentFileUploading: "b.txt", CurrentFileProgress: NoProgress}},
		{Name: EventUploadProgress, Payload: UploadProgress{FilesUploaded: "a.txt,b.txt", CurrentFileUploading: NoFile, CurrentFileProgress: NoProgress}},
		{Name: EventUploadCompleted, Payload: "a.txt,b.txt"},
	}, f.recorder.Events())

	assert.Equal(t, "a.txt,b.txt", f.fake.LastRequest("AddFiles").(*pb.AddFilesRequest).GetFilesToUpload())
	assert.Equal(t, 0, f.fake.Calls("StopAddFiles"))
}

func TestUploadEmptyStream(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Upload(context.Background(), "a.txt"))
	assert.Equal(t, []testutil.Event{{Name: EventUploadCompleted, Payload: ""}}, f.recorder.Events())
}

func TestUploadStreamErrorStopsOnce(t *testing.T) {
	f := newFixture(t)
	f.fake.SetUpload(testutil.Script[*pb.AddFilesResponse]{
		Items: []*pb.AddFilesResponse{{FilesUploaded: "a.txt"}},
		Err:   status.Error(codes.ResourceExhausted, "disk full"),
	})

	err := f.svc.Upload(context.Background(), "a.txt,b.txt")

	var streamErr *superbuilder.StreamError
	require.True(t, errors.As(err, &streamErr))
	assert.Equal(t, "AddFiles", streamErr.Op)
	assert.NoError(t, streamErr.StopErr)

	assert.Equal(t, 1, f.fake.Calls("StopAddFiles"))
	assert.Equal(t, []string{EventUploadProgress, EventUploadCompleted}, f.recorder.Names())
	assert.Equal(t, []any{"a.txt"}, f.recorder.Payloads(EventUploadCompleted))
	assert.Equal(t, float64(1), promtest.ToFloat64(f.metrics.StopHandshakes.WithLabelValues("StopAddFiles", "success")))
}

func TestUploadEmitFailureStops(t *testing.T) {
	f := newFixture(t)
	f.recorder.FailOn(EventUploadProgress, errors.New("window closed"))
	f.fake.SetUpload(testutil.Script[*pb.AddFilesResponse]{
		Items: []*pb.AddFilesResponse{{FilesUploaded: "a.txt"}},
		Hold:  true,
	})

	err := f.svc.Upload(context.Background(), "a.txt")
	assert.ErrorIs(t, err, ErrEmit)
	assert.Equal(t, 1, f.fake.Calls("StopAddFiles"))
	assert.Equal(t, []any{"a.txt"}, f.recorder.Payloads(EventUploadCompleted))
}

func TestExplicitStopEndsUpload(t *testing.T) {
	f := newFixture(t)

	stopped := make(chan struct{})
	f.fake.OnCall("StopAddFiles", func(context.Context) { close(stopped) })
	f.fake.OnCall("AddFiles", func(ctx context.Context) {
		select {
		case <-stopped:
		case <-ctx.Done():
		}
	})
	f.fake.SetUpload(testutil.Script[*pb.AddFilesResponse]{
		Items: []*pb.AddFilesResponse{{FilesUploaded: "a.txt"}},
	})

	done := make(chan error, 1)
	go func() {
		done <- f.svc.Upload(context.Background(), "a.txt,b.txt")
	}()

	assert.Eventually(t, func() bool {
		return f.fake.Calls("AddFiles") == 1
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, f.svc.StopUpload(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("upload did not finish after stop")
	}
	assert.Equal(t, []any{"a.txt"}, f.recorder.Payloads(EventUploadCompleted))
	assert.Equal(t, 1, f.fake.Calls("StopAddFiles"))
}
