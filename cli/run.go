package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ytscribe"
	"ytscribe/config"
	httpclient "ytscribe/http"
	"ytscribe/transcript"
	"ytscribe/youtube"
)

// request carries the validated flag values for one run.
type request struct {
	Channel       string
	VideoID       string
	DestDir       string
	MaxVideos     int
	Languages     []string
	Format        transcript.Format
	Timecodes     bool
	ListOnly      bool
	IncludeShorts bool
	Force         bool
}

// logOptions carries the logging setup shared by both sink phases.
type logOptions struct {
	jsonFormat bool
	level      slog.Level
	console    bool
	runID      string
}

// captionFetcher is the slice of transcript.Fetcher the orchestrator needs.
type captionFetcher interface {
	Fetch(ctx context.Context, videoID string, langs []string, force bool) ([]transcript.Line, error)
}

// app wires the components of one run together.
type app struct {
	cfg     *config.Config
	req     request
	logOpts logOptions
	logger  *slog.Logger
	out     io.Writer
	now     func() time.Time

	client   *httpclient.Client
	resolver youtube.ChannelResolver
	lister   youtube.UploadLister
	fetcher  captionFetcher

	logFile *os.File
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req, err := buildRequest()
	if err != nil {
		return err
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	jsonLogs, err := parseLogFormat(logFormat)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = time.Duration(timeout) * time.Second
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = float64(rateLimit)
	}

	runID := uuid.NewString()
	a := &app{
		cfg:     cfg,
		req:     req,
		logOpts: logOptions{jsonFormat: jsonLogs, level: level, console: consoleLog, runID: runID},
		logger:  bootstrapLogger(jsonLogs, level, consoleLog, runID),
		out:     os.Stdout,
		now:     time.Now,
		client: httpclient.New(&httpclient.Config{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
			RateLimit: cfg.RateLimit,
		}),
	}
	defer a.close()

	return a.run(ctx)
}

// buildRequest validates raw flag values into a request.
func buildRequest() (request, error) {
	req := request{
		Channel:       channel,
		VideoID:       videoID,
		DestDir:       destDir,
		MaxVideos:     maxVideos,
		Timecodes:     timeCodes,
		ListOnly:      listOnly,
		IncludeShorts: includeShorts,
		Force:         forceDownload,
	}

	if req.MaxVideos < 0 {
		return request{}, fmt.Errorf("max-number-of-videos must not be negative")
	}

	req.Languages = parseLanguages(languages)
	if len(req.Languages) == 0 {
		return request{}, fmt.Errorf("at least one subtitle language is required")
	}

	f, err := transcript.ParseFormat(format)
	if err != nil {
		return request{}, err
	}
	req.Format = f

	return req, nil
}

// parseLanguages splits the comma-separated language list, tolerating the
// [en,fr,es] spelling from the usage text.
func parseLanguages(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var langs []string
	for _, part := range strings.Split(s, ",") {
		if lang := strings.TrimSpace(part); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

func parseLogFormat(s string) (bool, error) {
	switch s {
	case "json":
		return true, nil
	case "plain_text":
		return false, nil
	}
	return false, fmt.Errorf("unknown log format %q", s)
}

func (a *app) run(ctx context.Context) error {
	if a.req.Channel != "" {
		return a.runChannel(ctx)
	}
	return a.runVideo(ctx)
}

// runChannel resolves the channel, then creates the destination directory,
// then enumerates uploads and either lists or downloads them. A channel
// that cannot be resolved leaves the filesystem untouched.
func (a *app) runChannel(ctx context.Context) error {
	if a.resolver == nil {
		a.resolver = youtube.NewPageResolver(a.client, a.logger)
	}

	handle := youtube.NormalizeHandle(a.req.Channel)
	channelID, err := a.resolver.Resolve(ctx, a.req.Channel)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.logger.Error("channel does not exist", "channel", a.req.Channel, "error", err)
		a.printf("The channel does not exist: %s\nURL: %s\n", a.req.Channel, youtube.ChannelPageURL(handle))
		return nil
	}

	if err := a.openDestination(); err != nil {
		return err
	}
	a.logger.Info("resolved channel", "channel", a.req.Channel, "channel_id", channelID)

	if a.lister == nil {
		lister, err := youtube.NewAPILister(a.cfg.APIKey, a.client.RateLimiter(), a.cfg.Timeout, a.logger)
		if err != nil {
			return err
		}
		a.lister = lister
	}

	a.printf("Scanning channel for videos...\n")
	videos, err := a.lister.ListUploads(ctx, channelID, youtube.ListOptions{
		MaxVideos:     a.req.MaxVideos,
		IncludeShorts: a.req.IncludeShorts,
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.logger.Error("failed to fetch video IDs", "channel_id", channelID, "error", err)
		return nil
	}
	a.printf("Discovered %d videos.\n", len(videos))
	a.logger.Debug("fetched videos", "count", len(videos))

	if a.req.ListOnly {
		a.listVideos(videos)
		return nil
	}
	return a.downloadAll(ctx, videos)
}

// runVideo downloads the transcript of a single video. The video ID stands
// in for the title; the publish date is the run time.
func (a *app) runVideo(ctx context.Context) error {
	if err := a.openDestination(); err != nil {
		return err
	}

	video := youtube.VideoRecord{
		ID:          a.req.VideoID,
		Title:       a.req.VideoID,
		PublishedAt: a.now().UTC(),
	}
	a.downloadOne(ctx, video)
	return nil
}

// openDestination creates the destination directory and switches logging to
// the run log file inside it.
func (a *app) openDestination() error {
	if err := os.MkdirAll(a.req.DestDir, 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	logger, file, err := openRunLog(a.req.DestDir, a.logOpts.jsonFormat, a.logOpts.level, a.logOpts.console, a.logOpts.runID, a.now())
	if err != nil {
		return err
	}
	a.logger = logger
	a.logFile = file

	a.logger.Info("destination directory created", "dir", a.req.DestDir)
	a.printf("Destination directory created: %s\n", a.req.DestDir)
	return nil
}

// listVideos prints the enumerated records and their summary statistics
// without fetching any transcript.
func (a *app) listVideos(videos []youtube.VideoRecord) {
	a.printf("Listing available subtitles and video information...\n")

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPUBLISHED")
	for _, video := range videos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", video.ID, truncate(video.Title, 50), video.PublishedAt.Format("2006-01-02"))
	}
	w.Flush()

	mostRecent := "N/A"
	if len(videos) > 0 && !videos[0].PublishedAt.IsZero() {
		mostRecent = videos[0].PublishedAt.Format("2006-01-02")
	}
	a.printf("Number of videos: %d\n", len(videos))
	a.printf("Most recent video date: %s\n", mostRecent)
	a.logger.Info("listed videos", "count", len(videos), "most_recent", mostRecent)
}

// downloadAll fetches transcripts for every record in order. Failures are
// per-video; an interrupt is the only thing that stops the batch.
func (a *app) downloadAll(ctx context.Context, videos []youtube.VideoRecord) error {
	a.printf("Starting to download transcriptions for %d videos.\n", len(videos))

	for _, video := range videos {
		if ctx.Err() != nil {
			a.logger.Warn("run interrupted", "error", ctx.Err())
			return ctx.Err()
		}
		a.downloadOne(ctx, video)
	}
	return nil
}

// downloadOne fetches and saves one transcript, reporting whether a file was
// written. All failures are logged and reported on the console.
func (a *app) downloadOne(ctx context.Context, video youtube.VideoRecord) bool {
	if a.fetcher == nil {
		a.fetcher = transcript.NewFetcher(a.client, a.logger)
	}

	lines, err := a.fetcher.Fetch(ctx, video.ID, a.req.Languages, a.req.Force)
	if err != nil {
		if errors.Is(err, ytscribe.ErrNoCaptions) || errors.Is(err, ytscribe.ErrLanguageUnavailable) {
			a.logger.Error("no captions available", "video_id", video.ID, "title", video.Title, "error", err)
		} else {
			a.logger.Error("an error occurred while fetching transcript", "video_id", video.ID, "title", video.Title, "error", err)
		}
		a.printf("No subtitles found for video %s\n", video.Title)
		return false
	}

	err = transcript.Save(video, lines, transcript.SaveOptions{
		Dir:       a.req.DestDir,
		Format:    a.req.Format,
		Timecodes: a.req.Timecodes,
	})
	if err != nil {
		a.logger.Error("could not save transcription", "video_id", video.ID, "title", video.Title, "error", err)
		a.printf("Could not save transcription for video %s\n", video.Title)
		return false
	}

	a.printf("Downloaded transcription for video %s (%s)\n", video.ID, video.Title)
	a.logger.Info("downloaded transcription", "video_id", video.ID, "title", video.Title)
	return true
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) close() {
	if a.client != nil {
		a.client.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
