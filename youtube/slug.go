package youtube

import (
	"regexp"
	"strings"
)

var (
	// slugDropRegex matches characters that never appear in a slug.
	slugDropRegex = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	// slugSeparatorRegex matches runs of whitespace and hyphens.
	slugSeparatorRegex = regexp.MustCompile(`[\s-]+`)
)

// NormalizeTitle maps a video title to a filesystem-safe slug: word
// characters and hyphens only, lowercased, with whitespace and hyphen runs
// collapsed to a single hyphen and no hyphens at either edge ("My Video! #1"
// becomes "my-video-1").
func NormalizeTitle(title string) string {
	s := slugDropRegex.ReplaceAllString(title, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugSeparatorRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
