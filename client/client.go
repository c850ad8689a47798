package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	videoInfoEndpoint = "/api/video-info"
	downloadEndpoint  = "/api/download"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the backend origin, e.g. "http://localhost:3000".
	BaseURL string
	// HTTPTimeout bounds metadata requests. The download path uses no
	// overall timeout so large streams are not cut off mid-transfer.
	HTTPTimeout time.Duration
	// MaxAttempts and RetryDelay override the retry defaults (3, 1s).
	MaxAttempts int
	RetryDelay  time.Duration
	// Logger receives retry diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Client talks to the video-download backend. It keeps no per-request
// state, so a single Client may be shared by concurrent callers.
type Client struct {
	opts     RequestOptions
	info     *Executor
	download *Executor
}

// New creates a Client from the given options.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")

	timeout := opts.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Metadata requests get an overall timeout; streaming downloads only
	// get a header timeout so slow large transfers can finish.
	infoClient := &http.Client{Timeout: timeout}
	streamClient := &http.Client{
		Transport: &http.Transport{ResponseHeaderTimeout: timeout},
	}

	// At this level a zero RetryDelay means "use the default"; pass a
	// RequestOptions with an explicit zero to Executor.Do for no delay.
	retryDelay := opts.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	return &Client{
		opts: RequestOptions{
			MaxAttempts: opts.MaxAttempts,
			RetryDelay:  retryDelay,
		}.normalized(),
		info:     NewExecutor(baseURL, infoClient, opts.Logger),
		download: NewExecutor(baseURL, streamClient, opts.Logger),
	}
}

// FetchVideoInfo retrieves metadata for the given video URL from the
// backend. Backend responses with status 400 or 404 surface as validation
// errors; all other failures propagate unchanged.
func (c *Client) FetchVideoInfo(ctx context.Context, videoURL string) (*VideoInfo, error) {
	resp, err := c.info.Do(ctx, videoInfoEndpoint, videoURL, c.opts)
	if err != nil {
		var ce *ClientError
		if errors.As(err, &ce) && ce.Type == ErrorAPI &&
			(ce.StatusCode == http.StatusNotFound || ce.StatusCode == http.StatusBadRequest) {
			return nil, NewValidationError("Video not found or invalid URL.")
		}
		return nil, err
	}
	defer resp.Body.Close()

	var info VideoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, NewValidationError("video info response is not valid JSON")
	}
	if info.Title == "" || len(info.Formats) == 0 {
		return nil, NewValidationError("video info response missing required fields: title and formats")
	}

	return &info, nil
}

// DownloadVideo requests the media file for the given video URL and
// returns the raw streaming response unmodified. The caller must consume
// and close the response body.
func (c *Client) DownloadVideo(ctx context.Context, videoURL string) (*http.Response, error) {
	return c.download.Do(ctx, downloadEndpoint, videoURL, c.opts)
}
