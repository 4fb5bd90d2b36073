package ytscribe

import (
	"ytscribe/config"
	"ytscribe/transcript"
	"ytscribe/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytscribe.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var listErr *ytscribe.ListError
//	if errors.As(err, &listErr) {
//		fmt.Printf("Listing failed for %s: %v\n", listErr.Channel, listErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// ResolveError wraps errors during channel resolution.
	ResolveError = youtube.ResolveError
	// ListError wraps errors during upload enumeration.
	ListError = youtube.ListError
	// UnavailableError wraps errors during transcript retrieval.
	UnavailableError = transcript.UnavailableError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the YouTube channel does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrNoUploadsPlaylist indicates the channel exposes no uploads playlist.
	ErrNoUploadsPlaylist = youtube.ErrNoUploadsPlaylist

	// ErrNoCaptions indicates the video has no caption tracks at all.
	ErrNoCaptions = transcript.ErrNoCaptions
	// ErrLanguageUnavailable indicates no caption track matched the
	// requested languages.
	ErrLanguageUnavailable = transcript.ErrLanguageUnavailable

	// ErrAPIKeyMissing indicates no YouTube Data API key is configured.
	ErrAPIKeyMissing = config.ErrAPIKeyMissing
)
