package client

import "regexp"

// videoURLPattern matches URLs for the supported video hosting domains.
// The scheme and "www." prefix are optional; a non-empty path after the
// host is required.
var videoURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube\.com|m\.youtube\.com|music\.youtube\.com|youtu\.be)/.+$`)

// ValidateVideoURL checks that the given string looks like a supported
// video URL. It runs synchronously before any network activity and has no
// side effects. On mismatch it returns a validation ClientError.
func ValidateVideoURL(raw string) error {
	if !videoURLPattern.MatchString(raw) {
		return NewValidationError("Invalid YouTube URL provided.")
	}
	return nil
}
