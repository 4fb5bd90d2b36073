package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	httpclient "ytscribe/http"
)

// playlistPageSize is the maximum page size accepted by playlistItems.list.
const playlistPageSize = 50

// APILister implements UploadLister using YouTube Data API v3.
type APILister struct {
	service *youtube.Service
	limiter *httpclient.RateLimiter
	timeout time.Duration
	logger  *slog.Logger
}

// NewAPILister creates a Data API backed upload lister. The limiter paces
// API requests together with the rest of the process and may be nil; timeout
// bounds each individual API call, zero meaning no deadline.
func NewAPILister(apiKey string, limiter *httpclient.RateLimiter, timeout time.Duration, logger *slog.Logger) (*APILister, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	return &APILister{
		service: service,
		limiter: limiter,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// ListUploads fetches the channel's uploads in playlist order, filtered and
// capped per opts. Any API failure aborts the whole enumeration; no partial
// result is returned.
func (a *APILister) ListUploads(ctx context.Context, channelID string, opts ListOptions) ([]VideoRecord, error) {
	playlistID, err := a.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, &ListError{Source: "api", Channel: channelID, Err: err}
	}

	videos, err := a.listPlaylistVideos(ctx, playlistID, opts)
	if err != nil {
		return nil, &ListError{Source: "api", Channel: channelID, Err: err}
	}

	return videos, nil
}

// uploadsPlaylistID looks up the platform-managed uploads playlist of a channel.
func (a *APILister) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	callCtx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.limiter.Wait(callCtx); err != nil {
		return "", err
	}

	call := a.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(callCtx)

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("channel lookup: %w", err)
	}

	if len(resp.Items) == 0 {
		return "", ErrNoUploadsPlaylist
	}

	channel := resp.Items[0]
	if channel.ContentDetails == nil || channel.ContentDetails.RelatedPlaylists == nil {
		return "", ErrNoUploadsPlaylist
	}
	playlistID := channel.ContentDetails.RelatedPlaylists.Uploads
	if playlistID == "" {
		return "", ErrNoUploadsPlaylist
	}

	a.logger.Debug("found uploads playlist", "channel_id", channelID, "playlist_id", playlistID)
	return playlistID, nil
}

// listPlaylistVideos pages through the uploads playlist until the playlist
// runs out or the post-filter count reaches the cap. The first page is
// always fetched, so a zero cap still costs one request.
func (a *APILister) listPlaylistVideos(ctx context.Context, playlistID string, opts ListOptions) ([]VideoRecord, error) {
	if opts.MaxVideos < 0 {
		opts.MaxVideos = 0
	}

	var videos []VideoRecord
	pageToken := ""
	for {
		callCtx, cancel := a.callContext(ctx)
		if err := a.limiter.Wait(callCtx); err != nil {
			cancel()
			return nil, err
		}

		call := a.service.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(playlistPageSize).
			PageToken(pageToken).
			Context(callCtx)

		resp, err := call.Do()
		cancel()
		if err != nil {
			return nil, fmt.Errorf("list playlist page: %w", err)
		}

		videos = appendPageItems(videos, resp.Items, opts.IncludeShorts)
		pageToken = resp.NextPageToken

		a.logger.Debug("fetched playlist page",
			"playlist_id", playlistID, "collected", len(videos), "more", pageToken != "")

		if pageToken == "" || len(videos) >= opts.MaxVideos {
			break
		}
	}

	if len(videos) > opts.MaxVideos {
		videos = videos[:opts.MaxVideos]
	}
	return videos, nil
}

// appendPageItems converts one page of playlist items into records, applying
// the shorts title filter.
func appendPageItems(videos []VideoRecord, items []*youtube.PlaylistItem, includeShorts bool) []VideoRecord {
	for _, item := range items {
		if item == nil || item.Snippet == nil {
			continue
		}

		title := item.Snippet.Title
		if !includeShorts && strings.Contains(strings.ToLower(title), "shorts") {
			continue
		}

		video := VideoRecord{Title: title}
		if item.Snippet.ResourceId != nil {
			video.ID = item.Snippet.ResourceId.VideoId
		}
		// Unparseable dates degrade to the zero time.
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			video.PublishedAt = t.UTC()
		}

		videos = append(videos, video)
	}
	return videos
}

// callContext derives the per-call context, attaching the configured
// deadline when one is set.
func (a *APILister) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
