package transcript

import "strings"

// selectTrack picks the caption track to download. Preferred languages are
// tried in order and the first language with any track wins; within that
// language a manually-created track is preferred over an auto-generated one.
// With force set, the first advertised track stands in when no preference
// matches.
func selectTrack(tracks []captionTrack, langs []string, force bool) (captionTrack, error) {
	for _, lang := range langs {
		asr := -1
		for i, track := range tracks {
			if !langEqual(track.LanguageCode, lang) {
				continue
			}
			if track.Kind != "asr" {
				return track, nil
			}
			if asr < 0 {
				asr = i
			}
		}
		if asr >= 0 {
			return tracks[asr], nil
		}
	}

	if force && len(tracks) > 0 {
		return tracks[0], nil
	}
	return captionTrack{}, ErrLanguageUnavailable
}

func langEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
