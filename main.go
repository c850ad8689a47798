package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-ytdl-client/client"
	"go-ytdl-client/config"
	"go-ytdl-client/downloader"
)

// forbiddenNames matches characters that cannot appear in filenames
var forbiddenNames = regexp.MustCompile(`[\\/<>:"|?*]`)

func main() {
	infoOnly := flag.Bool("info", false, "print video metadata and exit")
	output := flag.String("o", "", "output file path (default: derived from the video title)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-info] [-o file] <video-url>\n", os.Args[0])
		os.Exit(2)
	}
	videoURL := flag.Arg(0)

	// Load and validate configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Ctrl-C / SIGTERM cancels in-flight requests and the stream copy
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := client.New(client.Options{
		BaseURL:     cfg.BackendURL,
		HTTPTimeout: cfg.HTTPTimeout,
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
		Logger:      logger,
	})

	if err := run(ctx, svc, logger, videoURL, *infoOnly, *output); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc client.VideoService, logger *zap.Logger, videoURL string, infoOnly bool, output string) error {
	info, err := svc.FetchVideoInfo(ctx, videoURL)
	if err != nil {
		return err
	}

	fmt.Printf("Title: %s\n", info.Title)
	for _, f := range info.Formats {
		fmt.Printf("  - %s\n", describeFormat(f))
	}

	if infoOnly {
		return nil
	}

	resp, err := svc.DownloadVideo(ctx, videoURL)
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		path = defaultOutputPath(info.Title, resp.Header.Get("Content-Type"))
	}

	saver := downloader.NewStreamSaver(downloader.NewConsoleReporter(), logger)
	_, err = saver.Save(ctx, resp.Body, resp.ContentLength, path, downloader.ProgressCallbacks{})
	return err
}

// reportFailure prints the failure with its taxonomy kind when available
func reportFailure(err error) {
	var ce *client.ClientError
	if errors.As(err, &ce) {
		fmt.Fprintf(os.Stderr, "error (%s): %s\n", ce.Type, ce.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func describeFormat(f client.Format) string {
	parts := make([]string, 0, 3)
	if f.Quality != "" {
		parts = append(parts, f.Quality)
	}
	if f.MimeType != "" {
		parts = append(parts, f.MimeType)
	}
	if f.Itag != 0 {
		parts = append(parts, fmt.Sprintf("itag %d", f.Itag))
	}
	if len(parts) == 0 {
		return "unknown format"
	}
	return strings.Join(parts, " ")
}

// defaultOutputPath derives a safe filename from the video title and the
// download response content type
func defaultOutputPath(title, contentType string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "video"
	}
	name = forbiddenNames.ReplaceAllString(name, "_")

	ext := ".mp4"
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if parts := strings.SplitN(mediaType, "/", 2); len(parts) == 2 && parts[1] != "" {
			ext = "." + parts[1]
		}
	}

	return name + ext
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "DEBUG":
		zapLevel = zapcore.DebugLevel
	case "INFO":
		zapLevel = zapcore.InfoLevel
	case "WARN":
		zapLevel = zapcore.WarnLevel
	case "ERROR":
		zapLevel = zapcore.ErrorLevel
	case "FATAL":
		zapLevel = zapcore.FatalLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}
