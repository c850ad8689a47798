package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxErrorBodySize bounds how much of a failure response body is read when
// looking for a JSON error message.
const maxErrorBodySize = 64 * 1024

// Executor issues POST requests against the backend and applies bounded
// retry with a fixed delay. It is safe for concurrent use; it holds no
// per-request state.
type Executor struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewExecutor creates an Executor for the given backend base URL. A nil
// httpClient falls back to http.DefaultClient and a nil logger to a no-op
// logger.
func NewExecutor(baseURL string, httpClient *http.Client, logger *zap.Logger) *Executor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Do validates videoURL and POSTs it to baseURL+endpointPath, retrying
// network and API failures up to opts.MaxAttempts times with a fixed
// delay between attempts. A successful response is returned immediately
// and its body is owned by the caller. Validation failures abort before
// any network call; cancellation short-circuits at every stage.
func (e *Executor) Do(ctx context.Context, endpointPath, videoURL string, opts RequestOptions) (*http.Response, error) {
	if err := ValidateVideoURL(videoURL); err != nil {
		return nil, err
	}
	opts = opts.normalized()

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, NewCancelledError(err)
		}

		resp, err := e.attempt(ctx, endpointPath, videoURL)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if IsClientError(err, ErrorCancelled) {
			return nil, err
		}
		if attempt == opts.MaxAttempts || !IsRetryable(err) {
			return nil, err
		}

		// Diagnostic only; does not alter control flow.
		e.logger.Warn("backend request failed, retrying",
			zap.String("endpoint", endpointPath),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", opts.MaxAttempts),
			zap.Duration("retry_delay", opts.RetryDelay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, NewCancelledError(ctx.Err())
		case <-time.After(opts.RetryDelay):
		}
	}

	return nil, lastErr
}

// attempt performs exactly one request/response cycle.
func (e *Executor) attempt(ctx context.Context, endpointPath, videoURL string) (*http.Response, error) {
	payload, err := json.Marshal(requestBody{URL: videoURL})
	if err != nil {
		return nil, NewUnknownError("failed to encode request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+endpointPath, bytes.NewReader(payload))
	if err != nil {
		return nil, NewUnknownError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewCancelledError(ctx.Err())
		}
		return nil, NewNetworkError("request to backend failed", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := "Unknown API error"
		var body apiErrorBody
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body); decodeErr == nil && body.Message != "" {
			message = body.Message
		}
		resp.Body.Close()
		return nil, NewAPIError(resp.StatusCode, message)
	}

	return resp, nil
}
