package labsync

import (
	"context"
	"fmt"
	"time"
)

// SyncedAtField is stamped on every document written by a pass. All
// documents of one pass share a single timestamp captured at pass start.
const SyncedAtField = "_syncedAt"

// SyncResult reports one pass against one collection. Skipped counts
// documents excluded for lacking their unique key; Failures carries the
// operations the store rejected while the rest of the batch applied.
type SyncResult struct {
	Matched  int64
	Modified int64
	Upserted int64
	Skipped  int
	Failures []OpFailure
}

// Engine performs idempotent bulk upserts of normalized documents through a
// Sink, keyed by the unique-key field of the target collection kind.
type Engine struct {
	sink Sink
	now  func() time.Time
}

// NewEngine creates an engine writing through the given sink.
func NewEngine(sink Sink) *Engine {
	return &Engine{sink: sink, now: time.Now}
}

// Sync upserts documents into the named collection. Documents whose
// unique-key field (determined by kind) is empty or absent are skipped, not
// written. The batch executes unordered; per-operation failures end up in
// the result, a returned error means no result is available at all.
func (e *Engine) Sync(ctx context.Context, kind CollectionKind, collection string, docs []*Document) (*SyncResult, error) {
	result := &SyncResult{}
	if len(docs) == 0 {
		return result, nil
	}

	keyField, err := UniqueKey(kind)
	if err != nil {
		return nil, err
	}

	syncedAt := e.now().UTC()

	ops := make([]UpsertOp, 0, len(docs))
	for _, doc := range docs {
		keyValue := doc.GetString(keyField, "")
		if keyValue == "" {
			// Rows without their natural key cannot be deduplicated;
			// writing them would collide on the empty key.
			result.Skipped++
			continue
		}

		fields := doc.Fields()
		fields[SyncedAtField] = syncedAt

		ops = append(ops, UpsertOp{
			KeyField: keyField,
			KeyValue: keyValue,
			Fields:   fields,
		})
	}

	if len(ops) == 0 {
		return result, nil
	}

	bulk, err := e.sink.BulkUpsert(ctx, collection, ops)
	if err != nil {
		return nil, fmt.Errorf("bulk upsert to %q failed: %w", collection, err)
	}

	result.Matched = bulk.Matched
	result.Modified = bulk.Modified
	result.Upserted = bulk.Upserted
	result.Failures = bulk.Failures
	return result, nil
}
