package transcript

import (
	"errors"
	"testing"
)

func TestSelectTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u2", LanguageCode: "de"},
		{BaseURL: "u3", LanguageCode: "en"},
		{BaseURL: "u4", LanguageCode: "fr", Kind: "asr"},
	}

	tests := []struct {
		name    string
		langs   []string
		force   bool
		want    string
		wantErr bool
	}{
		{"manual preferred within language", []string{"en"}, false, "u3", false},
		{"first language wins over later manual", []string{"fr", "de"}, false, "u4", false},
		{"later language used when first absent", []string{"es", "de"}, false, "u2", false},
		{"auto-generated accepted when no manual exists", []string{"fr"}, false, "u4", false},
		{"case-insensitive language match", []string{"EN"}, false, "u3", false},
		{"no match", []string{"es"}, false, "", true},
		{"force falls back to first track", []string{"es"}, true, "u1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := selectTrack(tracks, tt.langs, tt.force)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectTrack() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrLanguageUnavailable) {
					t.Errorf("selectTrack() error = %v, want ErrLanguageUnavailable", err)
				}
				return
			}
			if track.BaseURL != tt.want {
				t.Errorf("selectTrack() = %q, want %q", track.BaseURL, tt.want)
			}
		})
	}
}

func TestSelectTrackNoTracks(t *testing.T) {
	_, err := selectTrack(nil, []string{"en"}, true)
	if !errors.Is(err, ErrLanguageUnavailable) {
		t.Errorf("selectTrack() error = %v, want ErrLanguageUnavailable even with force", err)
	}
}
