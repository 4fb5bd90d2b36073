package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	httpclient "ytscribe/http"
)

// defaultBaseURL is the public YouTube site serving channel pages.
const defaultBaseURL = "https://www.youtube.com"

// channelIDMarker precedes the channel ID in channel page markup.
const channelIDMarker = "youtube.com/channel/"

// channelIDRegex matches canonical channel identifiers.
var channelIDRegex = regexp.MustCompile(`UC[a-zA-Z0-9_-]{22}`)

// ChannelPageURL returns the public page URL for a channel handle.
func ChannelPageURL(handle string) string {
	return defaultBaseURL + "/@" + handle
}

// PageResolver resolves a channel handle to its channel ID by scraping the
// public channel page. The page markup is not a documented API; when the
// channel link cannot be located the handle is reported as not existing.
type PageResolver struct {
	client  *httpclient.Client
	logger  *slog.Logger
	baseURL string
}

// NewPageResolver creates a resolver that fetches channel pages through the
// given client.
func NewPageResolver(client *httpclient.Client, logger *slog.Logger) *PageResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageResolver{
		client:  client,
		logger:  logger,
		baseURL: defaultBaseURL,
	}
}

// Resolve maps a handle, @handle, or channel URL to a channel ID. Inputs
// that already carry the ID are answered without a network call. A single
// attempt is made; failures of any shape count as channel-not-found unless
// the context ended first.
func (r *PageResolver) Resolve(ctx context.Context, handle string) (string, error) {
	handle = NormalizeHandle(handle)
	if handle == "" {
		return "", &ResolveError{Handle: handle, Err: ErrChannelNotFound}
	}

	if channelIDRegex.MatchString(handle) {
		return channelIDRegex.FindString(handle), nil
	}

	pageURL := r.baseURL + "/@" + handle
	r.logger.Debug("fetching channel page", "handle", handle, "url", pageURL)

	resp, err := r.client.Get(ctx, pageURL)
	if err != nil {
		if ctx.Err() != nil {
			return "", &ResolveError{Handle: handle, Err: ctx.Err()}
		}
		return "", &ResolveError{Handle: handle, Err: fmt.Errorf("%w: %v", ErrChannelNotFound, err)}
	}

	id, err := extractChannelID(string(resp.Body))
	if err != nil {
		return "", &ResolveError{Handle: handle, Err: err}
	}

	r.logger.Debug("resolved channel", "handle", handle, "channel_id", id)
	return id, nil
}

// NormalizeHandle strips surrounding whitespace and leading "@" characters
// from user input, and reduces handle URLs to the bare handle. Channel
// URLs carrying an ID pass through untouched for Resolve to answer directly.
func NormalizeHandle(input string) string {
	input = strings.TrimSpace(input)
	if strings.Contains(input, "youtube.com/@") {
		parts := strings.SplitN(input, "youtube.com/@", 2)
		input = parts[1]
		input = strings.Split(input, "/")[0]
		input = strings.Split(input, "?")[0]
	}
	return strings.TrimLeft(input, "@")
}

// extractChannelID pulls the channel ID out of channel page markup. The ID
// follows the first "youtube.com/channel/" occurrence and runs until the
// closing quote of its href.
func extractChannelID(body string) (string, error) {
	_, rest, found := strings.Cut(body, channelIDMarker)
	if !found {
		return "", fmt.Errorf("%w: no channel link in page", ErrChannelNotFound)
	}
	id := rest
	if i := strings.Index(id, `">`); i >= 0 {
		id = id[:i]
	}
	if m := channelIDRegex.FindString(id); m != "" {
		return m, nil
	}
	return "", fmt.Errorf("%w: channel link not recognized", ErrChannelNotFound)
}
