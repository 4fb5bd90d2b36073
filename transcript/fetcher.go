package transcript

import (
	"context"
	"fmt"
	"log/slog"

	httpclient "ytscribe/http"
)

// defaultBaseURL is where watch pages live.
const defaultBaseURL = "https://www.youtube.com"

// Fetcher retrieves captions for individual videos via the public watch
// page, without any API credential.
type Fetcher struct {
	client  *httpclient.Client
	logger  *slog.Logger
	baseURL string
}

// NewFetcher creates a caption fetcher on top of the shared HTTP client.
func NewFetcher(client *httpclient.Client, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:  client,
		logger:  logger,
		baseURL: defaultBaseURL,
	}
}

// Fetch downloads the captions of one video in the first available preferred
// language. All failures come back as *UnavailableError; errors.Is
// distinguishes missing captions and language misses from transport faults.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, langs []string, force bool) ([]Line, error) {
	lines, err := f.fetch(ctx, videoID, langs, force)
	if err != nil {
		return nil, &UnavailableError{VideoID: videoID, Err: err}
	}
	return lines, nil
}

func (f *Fetcher) fetch(ctx context.Context, videoID string, langs []string, force bool) ([]Line, error) {
	watchURL := f.baseURL + "/watch?v=" + videoID
	f.logger.Debug("fetching watch page", "video_id", videoID)

	page, err := f.client.Get(ctx, watchURL)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	pr, err := extractPlayerResponse(string(page.Body))
	if err != nil {
		return nil, err
	}

	tracks := pr.tracks()
	if len(tracks) == 0 {
		if pr.PlayabilityStatus != nil && pr.PlayabilityStatus.Status != "" && pr.PlayabilityStatus.Status != "OK" {
			reason := pr.PlayabilityStatus.Reason
			if reason == "" {
				reason = pr.PlayabilityStatus.Status
			}
			return nil, fmt.Errorf("%w: %s", ErrNoCaptions, reason)
		}
		return nil, ErrNoCaptions
	}

	track, err := selectTrack(tracks, langs, force)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("downloading caption track",
		"video_id", videoID, "language", track.LanguageCode, "kind", track.Kind)

	captions, err := f.client.Get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("caption track: %w", err)
	}

	return parseTimedtext(captions.Body)
}
