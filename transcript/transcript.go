// Package transcript retrieves video captions from the public watch page
// and renders them to files.
package transcript

import "errors"

// Sentinel errors for transcript retrieval.
var (
	// ErrNoCaptions indicates the video exposes no caption tracks at all.
	ErrNoCaptions = errors.New("transcript: video has no captions")

	// ErrLanguageUnavailable indicates no caption track matched the
	// requested languages.
	ErrLanguageUnavailable = errors.New("transcript: no captions in requested languages")
)

// Line is one caption cue: where it starts, how long it lasts, what it says.
type Line struct {
	Start float64 `json:"start"`
	Text  string  `json:"text"`

	// Dur is kept for callers that need cue length; the serialized
	// forms carry only Start and Text.
	Dur float64 `json:"-"`
}

// Document is the JSON shape written for a saved transcript.
type Document struct {
	Title      string `json:"title"`
	Transcript []Line `json:"transcript"`
}

// UnavailableError reports a failed transcript retrieval for one video.
type UnavailableError struct {
	// VideoID identifies the video whose captions could not be fetched
	VideoID string
	// Err is the underlying cause
	Err error
}

// Error returns a string representation of the error.
func (e *UnavailableError) Error() string {
	return "transcript: video " + e.VideoID + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}
