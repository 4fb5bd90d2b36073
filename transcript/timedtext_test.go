package transcript

import "testing"

func TestParseTimedtext(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8" ?>
<transcript>
	<text start="0" dur="1.54">hi everyone</text>
	<text start="1.54" dur="2.2">we&amp;#39;re back &amp;amp; live</text>
	<text start="3.74" dur="1">&amp;quot;quoted&amp;quot;</text>
</transcript>`)

	lines, err := parseTimedtext(body)
	if err != nil {
		t.Fatalf("parseTimedtext() failed: %v", err)
	}

	want := []Line{
		{Start: 0, Dur: 1.54, Text: "hi everyone"},
		{Start: 1.54, Dur: 2.2, Text: "we're back & live"},
		{Start: 3.74, Dur: 1, Text: `"quoted"`},
	}

	if len(lines) != len(want) {
		t.Fatalf("parseTimedtext() returned %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestParseTimedtextEmpty(t *testing.T) {
	lines, err := parseTimedtext([]byte(`<transcript></transcript>`))
	if err != nil {
		t.Fatalf("parseTimedtext() failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("parseTimedtext() returned %d lines, want 0", len(lines))
	}
}

func TestParseTimedtextMalformed(t *testing.T) {
	if _, err := parseTimedtext([]byte(`<transcript><text start="0"`)); err == nil {
		t.Fatal("parseTimedtext() succeeded on malformed XML, want error")
	}
}
