package transcript

import (
	"encoding/xml"
	"fmt"
	"html"
)

// ytTimedText mirrors the legacy timedtext caption document:
// <transcript><text start="0" dur="1.5">...</text></transcript>.
type ytTimedText struct {
	XMLName xml.Name `xml:"transcript"`
	Lines   []ytLine `xml:"text"`
}

type ytLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// parseTimedtext decodes a timedtext XML body into transcript lines.
// Caption text arrives double-escaped; the XML decoder removes one layer
// and UnescapeString the other.
func parseTimedtext(body []byte) ([]Line, error) {
	var doc ytTimedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode timedtext: %w", err)
	}

	lines := make([]Line, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, Line{
			Start: l.Start,
			Dur:   l.Dur,
			Text:  html.UnescapeString(l.Text),
		})
	}
	return lines, nil
}
