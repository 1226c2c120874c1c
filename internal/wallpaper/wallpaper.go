package wallpaper

import (
	"context"
	"io"
	"os"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const maxRedirects = 10

// Fetcher downloads a single resource to a local file.
type Fetcher struct {
	client *resty.Client
	logger *zap.Logger
}

// NewFetcher returns a Fetcher that follows redirects and makes exactly one
// attempt per call.
func NewFetcher(logger *zap.Logger) *Fetcher {
	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetRetryCount(0).
		SetLogger(logger.Sugar())

	return &Fetcher{client: client, logger: logger}
}

// Fetch streams rawURL into destPath, truncating any previous content.
//
// The destination is opened before the request is sent, so an unwritable
// path fails with *FileOpenError without touching the network. A failed or
// interrupted transfer returns *NetworkError and leaves destPath empty or
// holding whatever was received.
//
// The response status is not checked: a non-2xx reply whose body transfers
// completely counts as success and is only reported as a warning.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return &FileOpenError{Op: "open", Path: destPath, Err: err}
	}
	defer out.Close()

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return &NetworkError{URL: rawURL, Err: err}
	}

	body := resp.RawBody()
	if body == nil {
		return &NetworkError{URL: rawURL, Err: io.ErrUnexpectedEOF}
	}
	defer body.Close()

	if !resp.IsSuccess() {
		f.logger.Warn("server returned a non-success status, keeping the body anyway",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode()))
	}

	n, err := io.Copy(out, body)
	if err != nil {
		return &NetworkError{URL: rawURL, Err: err}
	}

	if err := out.Close(); err != nil {
		return &FileOpenError{Op: "close", Path: destPath, Err: err}
	}

	f.logger.Info("image downloaded", zap.String("path", destPath), zap.Int64("bytes", n))
	return nil
}
