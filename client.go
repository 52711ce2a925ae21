package labsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pass binds one worksheet to one destination collection. Passes are
// supplied by configuration; the client treats kinds as already validated
// and fails fast if they are not.
type Pass struct {
	Sheet          SheetKind
	Worksheet      string
	Collection     CollectionKind
	CollectionName string
}

// PassResult is the outcome of one completed pass.
type PassResult struct {
	Pass   Pass
	Rows   int
	Result *SyncResult
}

// Client runs sync passes: fetch all rows of a worksheet, normalize them
// into documents, and bulk-upsert them into the destination collection.
// Passes run sequentially; each is fully flushed before the next begins.
type Client struct {
	source Source
	engine *Engine
	config Config
	logger *slog.Logger
}

// New creates a client reading from source and writing through sink.
func New(source Source, sink Sink, config *Config) *Client {
	cfg := config.withDefaults()
	return &Client{
		source: source,
		engine: NewEngine(sink),
		config: cfg,
		logger: cfg.Logger,
	}
}

// Run executes the passes in order and returns one result per completed
// pass. The first failing pass stops the run; results of the passes that
// already completed are returned alongside the error. A failed run is safe
// to repeat because every write is a key-based upsert.
func (c *Client) Run(ctx context.Context, passes []Pass) ([]PassResult, error) {
	results := make([]PassResult, 0, len(passes))

	for _, pass := range passes {
		res, err := c.runPass(ctx, pass)
		if err != nil {
			return results, fmt.Errorf("pass %q -> %q: %w", pass.Worksheet, pass.CollectionName, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func (c *Client) runPass(ctx context.Context, pass Pass) (PassResult, error) {
	logger := c.logger.With(
		"worksheet", pass.Worksheet,
		"collection", pass.CollectionName,
	)

	rows, err := c.fetchRows(ctx, pass.Worksheet)
	if err != nil {
		return PassResult{}, err
	}
	logger.Info("fetched rows", "rows", len(rows))

	docs, err := MapRows(pass.Sheet, rows)
	if err != nil {
		return PassResult{}, err
	}

	result, err := c.engine.Sync(ctx, pass.Collection, pass.CollectionName, docs)
	if err != nil {
		return PassResult{}, err
	}

	logger.Info("synced collection",
		"matched", result.Matched,
		"modified", result.Modified,
		"upserted", result.Upserted,
		"skipped", result.Skipped,
		"failed", len(result.Failures),
	)
	for _, f := range result.Failures {
		logger.Warn("upsert rejected", "key", f.Key, "error", f.Err)
	}

	return PassResult{Pass: pass, Rows: len(rows), Result: result}, nil
}

// fetchRows retrieves the worksheet with exponential-backoff retry. Only the
// fetch is retried; a failed sync surfaces to the caller, which may rerun
// the whole pass.
func (c *Client) fetchRows(ctx context.Context, worksheet string) ([]RawRow, error) {
	var rows []RawRow
	var err error

	for i := 0; i <= c.config.MaxRetries; i++ {
		rows, err = c.source.FetchRows(ctx, worksheet)
		if err == nil {
			return rows, nil
		}

		if i < c.config.MaxRetries {
			backoff := time.Duration(1<<uint(i)) * c.config.RetryInterval
			if backoff > 30*time.Second {
				backoff = 30 * time.Second
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("fetch %q failed after %d retries: %w", worksheet, c.config.MaxRetries, err)
}
