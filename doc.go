// Package ytscribe downloads transcripts for YouTube videos.
//
// The ytscribe command fetches the recent uploads of a channel (or one
// single video) and saves each video's captions as plain text or JSON.
//
// Overview
//
// The work is split across small sub-packages, reachable from the root:
//
//   - youtube: channel resolution and upload enumeration
//   - transcript: caption discovery, track selection, and file output
//   - config: environment and .env configuration
//   - cli: the command line orchestrator
//
// Quick Start
//
// Resolve a channel and list its uploads:
//
//	ctx := context.Background()
//	resolver := youtube.NewPageResolver(client, logger)
//	channelID, err := resolver.Resolve(ctx, "@somechannel")
//	if err != nil {
//		log.Fatal(err)
//	}
//	lister, err := youtube.NewAPILister(apiKey, client.RateLimiter(), 10*time.Second, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	videos, err := lister.ListUploads(ctx, channelID, youtube.ListOptions{MaxVideos: 5})
//
// Fetch and save one transcript:
//
//	fetcher := transcript.NewFetcher(client, logger)
//	lines, err := fetcher.Fetch(ctx, "dQw4w9WgXcQ", []string{"en"}, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = transcript.Save(video, lines, transcript.SaveOptions{
//		Dir:    "./out",
//		Format: transcript.FormatPlainText,
//	})
//
// Configuration
//
// Settings come from the environment, with a .env file in the working
// directory consulted first:
//
//   - YOUTUBE_API_KEY: Data API v3 key (required)
//   - YTSCRIBE_USER_AGENT: user agent for page and caption requests
//   - YTSCRIBE_TIMEOUT: per-call network timeout (e.g. 10s)
//   - YTSCRIBE_RATE_LIMIT: shared request budget in calls per second
//
// Command line flags override the environment for the values both cover.
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, ytscribe.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
//	var listErr *ytscribe.ListError
//	if errors.As(err, &listErr) {
//		fmt.Printf("Listing %s failed: %v\n", listErr.Channel, listErr.Err)
//	}
//
package ytscribe
