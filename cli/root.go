// Package cli implements the ytscribe command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	channel   string
	videoID   string
	destDir   string
	maxVideos int
	languages string
	format    string
	timeCodes bool
	rateLimit int
	timeout   int

	logLevel   string
	logFormat  string
	consoleLog bool

	listOnly      bool
	includeShorts bool
	forceDownload bool
)

var rootCmd = &cobra.Command{
	Use:   "ytscribe",
	Short: "Download YouTube video transcriptions",
	Long: `Ytscribe downloads transcriptions for YouTube videos: either the recent
uploads of a channel or one single video, saved as plain text or JSON
alongside a per-run log file.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&channel, "channel", "c", "", "YouTube channel handle or URL")
	rootCmd.Flags().StringVarP(&videoID, "video-id", "v", "", "YouTube video ID")
	rootCmd.Flags().StringVarP(&destDir, "destination-directory", "d", "", "directory where transcriptions are saved")
	rootCmd.Flags().IntVarP(&maxVideos, "max-number-of-videos", "m", 5, "maximum number of videos to download transcriptions for")
	rootCmd.Flags().StringVarP(&languages, "languages-of-subtitles", "l", "", "comma-separated subtitle languages, e.g. [en,fr,es]")
	rootCmd.Flags().StringVarP(&format, "format", "f", "plain_text", "format for saved transcriptions: plain_text or json")
	rootCmd.Flags().BoolVarP(&timeCodes, "time-codes", "t", false, "include time codes in the transcriptions")
	rootCmd.Flags().IntVarP(&rateLimit, "rate-limit", "r", 5, "network rate limit in calls per second (0 = unlimited)")
	rootCmd.Flags().IntVarP(&timeout, "timeout", "T", 10, "timeout for network calls in seconds")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "L", "INFO", "logging level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	rootCmd.Flags().StringVarP(&logFormat, "log-format", "F", "plain_text", "format for logging output: plain_text or json")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "list available subtitles, video count, and most recent video date")
	rootCmd.Flags().BoolVar(&includeShorts, "include-shorts", false, "include YouTube Shorts in the download")
	rootCmd.Flags().BoolVar(&forceDownload, "force-download", false, "download the first available subtitle when the requested language is missing")
	rootCmd.Flags().BoolVar(&consoleLog, "console-log", false, "output log messages to the console as well as the log file")

	rootCmd.MarkFlagsMutuallyExclusive("channel", "video-id")
	rootCmd.MarkFlagsOneRequired("channel", "video-id")
	_ = rootCmd.MarkFlagRequired("destination-directory")
	_ = rootCmd.MarkFlagRequired("languages-of-subtitles")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
