package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	labsync "github.com/bhklab/lab-website-data-refresh"
	"github.com/bhklab/lab-website-data-refresh/adapters/googlesheets"
	"github.com/bhklab/lab-website-data-refresh/adapters/mongodb"
	"github.com/bhklab/lab-website-data-refresh/internal/logging"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

func main() {
	if err := run(); err != nil {
		slog.Error("refresh failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sheetsConfig := googlesheets.Config{SpreadsheetID: cfg.SpreadsheetID}
	var source *googlesheets.Source
	switch {
	case cfg.CredentialsJSON != "":
		var tokenSource oauth2.TokenSource
		tokenSource, err = googlesheets.CreateTokenSource(ctx, []byte(cfg.CredentialsJSON))
		if err == nil {
			source, err = googlesheets.New(ctx, sheetsConfig, option.WithTokenSource(tokenSource))
		}
	case cfg.CredentialsFile != "":
		source, err = googlesheets.NewWithJSONKeyFile(ctx, sheetsConfig, cfg.CredentialsFile)
	default:
		source, err = googlesheets.NewWithDefaultCredentials(ctx, sheetsConfig)
	}
	if err != nil {
		return fmt.Errorf("failed to create sheets source: %w", err)
	}

	sink, err := mongodb.New(ctx, mongodb.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
	})
	if err != nil {
		return fmt.Errorf("failed to create mongodb sink: %w", err)
	}
	defer func() {
		if err := sink.Close(context.Background()); err != nil {
			slog.Warn("failed to disconnect from mongodb", "error", err)
		}
	}()

	client := labsync.New(source, sink, googlesheets.DefaultClientConfig())

	slog.Info("starting refresh", "database", cfg.MongoDatabase, "passes", len(cfg.Passes))
	results, err := client.Run(ctx, cfg.Passes)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		failed += len(r.Result.Failures)
	}
	if failed > 0 {
		return fmt.Errorf("%d upsert operations were rejected, see log for keys", failed)
	}

	slog.Info("refresh complete", "passes", len(results))
	return nil
}
