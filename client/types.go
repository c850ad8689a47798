package client

import "time"

const (
	// DefaultMaxAttempts is the default bound on network calls per request.
	DefaultMaxAttempts = 3
	// DefaultRetryDelay is the default fixed delay between attempts.
	DefaultRetryDelay = 1 * time.Second
)

// VideoInfo contains video metadata returned by the backend
type VideoInfo struct {
	Title   string   `json:"title"`
	Formats []Format `json:"formats"`
}

// Format describes one downloadable media format offered by the backend
type Format struct {
	Itag     int    `json:"itag,omitempty"`
	Quality  string `json:"quality,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Ext      string `json:"ext,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
}

// RequestOptions controls retry behavior for a single backend request
type RequestOptions struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

// DefaultRequestOptions returns the default retry parameters
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// normalized clamps the options to their invariants: MaxAttempts >= 1 and
// RetryDelay >= 0. A zero delay is honored as "retry immediately".
func (o RequestOptions) normalized() RequestOptions {
	if o.MaxAttempts < 1 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.RetryDelay < 0 {
		o.RetryDelay = 0
	}
	return o
}

// requestBody is the JSON payload sent to every backend endpoint
type requestBody struct {
	URL string `json:"url"`
}

// apiErrorBody is the best-effort JSON shape of backend error responses
type apiErrorBody struct {
	Message string `json:"message"`
}
