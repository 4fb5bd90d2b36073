package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// playerResponseMarker precedes the player JSON embedded in every watch page.
const playerResponseMarker = "ytInitialPlayerResponse = "

// captionTrack describes one caption track advertised by the player.
// Kind is "asr" for auto-generated tracks and empty for manual ones.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// playerResponse is the slice of ytInitialPlayerResponse this package reads.
type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

// tracks returns the advertised caption tracks, nil when captions are absent.
func (pr *playerResponse) tracks() []captionTrack {
	if pr.Captions == nil {
		return nil
	}
	return pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
}

// extractPlayerResponse pulls the embedded player JSON out of a watch page
// body.
func extractPlayerResponse(page string) (*playerResponse, error) {
	_, rest, ok := strings.Cut(page, playerResponseMarker)
	if !ok {
		return nil, fmt.Errorf("player response marker not found")
	}

	blob, ok := extractJSON(rest)
	if !ok {
		return nil, fmt.Errorf("player response JSON unbalanced")
	}

	var pr playerResponse
	if err := json.Unmarshal([]byte(blob), &pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &pr, nil
}

// extractJSON returns the balanced JSON object opening at the start of s,
// tracking string literals so braces inside caption text do not miscount.
func extractJSON(s string) (string, bool) {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++ // skip the escaped character
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
