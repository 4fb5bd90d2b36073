// Package youtube resolves channel handles and enumerates channel uploads.
package youtube

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for channel resolution and upload listing.
var (
	ErrChannelNotFound   = errors.New("youtube: channel not found")
	ErrNoUploadsPlaylist = errors.New("youtube: channel has no uploads playlist")
)

// ChannelResolver maps user input naming a channel to its channel ID.
type ChannelResolver interface {
	// Resolve maps a handle, @handle, or channel URL to a channel ID.
	// The returned ID is non-empty exactly when err is nil.
	Resolve(ctx context.Context, handle string) (string, error)
}

// UploadLister enumerates the uploads of a channel.
type UploadLister interface {
	// ListUploads fetches video records from the channel's uploads playlist,
	// in playlist order, capped and filtered per opts.
	ListUploads(ctx context.Context, channelID string, opts ListOptions) ([]VideoRecord, error)
}

// ListOptions configures upload enumeration.
type ListOptions struct {
	// MaxVideos caps the number of records returned. Zero yields an empty
	// result after a single page fetch; it never means "unlimited".
	// Negative values are treated as zero.
	MaxVideos int

	// IncludeShorts keeps videos whose title contains "shorts". The title
	// substring is the only shorts signal used; it is a heuristic.
	IncludeShorts bool
}

// VideoRecord describes one upload of a channel.
type VideoRecord struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`

	// Title is the video title as returned by the platform.
	Title string `json:"title"`

	// PublishedAt is the publication time in UTC. Zero when the platform
	// returned an unparseable date.
	PublishedAt time.Time `json:"published_at"`
}

// WatchURL returns the full YouTube URL for this video.
func (v VideoRecord) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// ResolveError wraps errors with context about channel resolution.
type ResolveError struct {
	Handle string // Channel handle or URL as given by the user
	Err    error  // Underlying error
}

func (e *ResolveError) Error() string {
	return "youtube: resolving channel " + e.Handle + ": " + e.Err.Error()
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ListError wraps errors with context about the listing operation.
type ListError struct {
	Source  string // Source of the error: "api"
	Channel string // Channel ID being listed
	Err     error  // Underlying error
}

func (e *ListError) Error() string {
	return "youtube: " + e.Source + " listing " + e.Channel + ": " + e.Err.Error()
}

func (e *ListError) Unwrap() error { return e.Err }
