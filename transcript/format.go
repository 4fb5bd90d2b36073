package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Format selects the on-disk rendering of a transcript.
type Format string

// Supported output formats.
const (
	FormatPlainText Format = "plain_text"
	FormatJSON      Format = "json"
)

// ParseFormat maps the CLI spelling to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlainText, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "txt"
}

// FormatSeconds renders a start offset in its shortest decimal form with at
// least one digit after the point: 0.0, 1.5, 12.34.
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// renderText writes the plain-text form: a title header, a blank line, then
// one caption per line, optionally prefixed with its start offset.
func renderText(title string, lines []Line, timecodes bool) []byte {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, line := range lines {
		if timecodes {
			b.WriteString(FormatSeconds(line.Start))
			b.WriteString(" - ")
		}
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// renderJSON writes the document form with 4-space indentation. HTML
// escaping is disabled so caption text lands in the file as literal UTF-8.
func renderJSON(title string, lines []Line) ([]byte, error) {
	doc := Document{Title: title, Transcript: lines}
	if doc.Transcript == nil {
		doc.Transcript = []Line{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
