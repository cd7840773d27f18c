package processor

import "errors"

// Sentinel errors for the fatal failure classes of a capture session.
// None of these are retried; all terminate the session.
var (
	// ErrSourceUnavailable is returned when the capture device fails to open.
	ErrSourceUnavailable = errors.New("processor: could not open the camera")

	// ErrModelLoadFailed is returned when the cascade model is missing or invalid.
	ErrModelLoadFailed = errors.New("processor: could not load face cascade")

	// ErrSinkUnavailable is returned when the video writer fails to open.
	ErrSinkUnavailable = errors.New("processor: could not open the video writer")

	// ErrCaptureFailed is returned when a read yields an empty frame mid-loop.
	ErrCaptureFailed = errors.New("processor: could not read a frame from the camera")
)
