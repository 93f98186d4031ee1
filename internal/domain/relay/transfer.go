package relay

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	pb "github.com/superbuilder/coreui/backend/proto/superbuilder"
)

// Placeholders sent when an upload item has no current file.
const (
	NoFile     = "No file"
	NoProgress = "No progress"
)

// DownloadRequest is the input of one model download.
type DownloadRequest struct {
	FileURL   string  `json:"file_url"`
	LocalPath string  `json:"local_path"`
	TokenID   *string `json:"token_id,omitempty"`
}

// DownloadProgress is the payload of download-progress.
type DownloadProgress struct {
	URL      string `json:"url"`
	Progress int32  `json:"progress"`
	File     string `json:"file"`
}

// DownloadResult is the payload of download-completed.
type DownloadResult struct {
	URL     string `json:"url"`
	File    string `json:"file"`
	Success bool   `json:"success"`
}

// UploadProgress is the payload of upload-progress.
type UploadProgress struct {
	FilesUploaded        string `json:"files_uploaded"`
	CurrentFileUploading string `json:"current_file_uploading"`
	CurrentFileProgress  string `json:"current_file_progress"`
}

// Download streams download progress and returns the downloaded file name
// as soon as an item reports 100%. The remaining stream is cancelled, not
// drained. A stream that ends earlier fails with IncompleteDownloadError
// carrying the last file name seen. download-completed is emitted exactly
// once on every path after the stream is opened.
func (s *Service) Download(ctx context.Context, req DownloadRequest) (file string, err error) {
	client, release, err := s.handle.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	stream, err := client.DownloadFiles(streamCtx, &pb.DownloadFilesRequest{
		FileUrl:   req.FileURL,
		LocalPath: req.LocalPath,
		TokenId:   req.TokenID,
	})
	if err != nil {
		return "", err
	}

	logger := s.logger.With(zap.String("stream", "download"), zap.String("url", req.FileURL))

	s.streamStarted("download")
	defer func() { s.streamFinished("download", err) }()

	var last string
	finish := func(success bool) {
		s.complete(logger, EventDownloadCompleted, DownloadResult{
			URL:     req.FileURL,
			File:    last,
			Success: success,
		})
	}

	for {
		resp, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			logger.Warn("Download stream ended before completion", zap.String("last_file", last))
			finish(false)
			return "", &superbuilder.IncompleteDownloadError{File: last}
		}
		if recvErr != nil {
			// The middleware has no stop call for downloads, so no handshake.
			finish(false)
			return "", &superbuilder.StreamError{Op: "DownloadFiles", Err: recvErr}
		}

		last = resp.GetFileDownloaded()
		if emitErr := s.emit(EventDownloadProgress, DownloadProgress{
			URL:      req.FileURL,
			Progress: resp.GetProgress(),
			File:     last,
		}); emitErr != nil {
			finish(false)
			return "", emitErr
		}

		if resp.GetProgress() == 100 {
			logger.Info("Download complete", zap.String("file", last))
			finish(true)
			return last, nil
		}
	}
}

// Upload streams upload progress to the UI. Each item becomes one
// upload-progress event and upload-completed carries the final uploaded
// file list. A stream error sends StopAddFiles before upload-completed.
func (s *Service) Upload(ctx context.Context, paths string) (err error) {
	client, release, err := s.handle.Acquire()
	if err != nil {
		return err
	}
	defer release()

	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	stream, err := client.AddFiles(streamCtx, &pb.AddFilesRequest{FilesToUpload: paths})
	if err != nil {
		return err
	}

	logger := s.logger.With(zap.String("stream", "upload"))

	s.streamStarted("upload")
	defer func() { s.streamFinished("upload", err) }()

	var uploaded string
	abort := func(cause error) error {
		stopErr := s.stop(logger, "StopAddFiles", client.StopAddFiles)
		s.complete(logger, EventUploadCompleted, uploaded)
		return withStop(cause, stopErr)
	}

	for {
		resp, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return abort(&superbuilder.StreamError{Op: "AddFiles", Err: recvErr})
		}

		uploaded = resp.GetFilesUploaded()
		progress := UploadProgress{
			FilesUploaded:        uploaded,
			CurrentFileUploading: NoFile,
			CurrentFileProgress:  NoProgress,
		}
		if resp.CurrentFileUploading != nil {
			progress.CurrentFileUploading = resp.GetCurrentFileUploading()
		}
		if resp.CurrentFileProgress != nil {
			progress.CurrentFileProgress = resp.GetCurrentFileProgress()
		}

		if emitErr := s.emit(EventUploadProgress, progress); emitErr != nil {
			return abort(emitErr)
		}
	}

	logger.Debug("Upload stream finished", zap.String("files_uploaded", uploaded))
	s.complete(logger, EventUploadCompleted, uploaded)
	return nil
}
