package transcript

import (
	"fmt"
	"path/filepath"

	"ytscribe/internal/atomicfile"
	"ytscribe/youtube"
)

// SaveOptions controls where and how a transcript is written.
type SaveOptions struct {
	// Dir is the destination directory; it must already exist
	Dir string
	// Format selects JSON or plain-text output
	Format Format
	// Timecodes prefixes each plain-text line with its start offset
	Timecodes bool
}

// Filename composes the output name for a video from its normalized title,
// publish date, and format extension.
func Filename(video youtube.VideoRecord, format Format) string {
	return youtube.NormalizeTitle(video.Title) + "-" + video.PublishedAt.Format("20060102") + "." + format.Ext()
}

// Save renders lines in the configured format and writes them under the
// destination directory, replacing any previous file for the same video.
func Save(video youtube.VideoRecord, lines []Line, opts SaveOptions) error {
	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case FormatJSON:
		data, err = renderJSON(video.Title, lines)
	default:
		data = renderText(video.Title, lines, opts.Timecodes)
	}
	if err != nil {
		return fmt.Errorf("render transcript: %w", err)
	}

	path := filepath.Join(opts.Dir, Filename(video, opts.Format))
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
