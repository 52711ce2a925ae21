package labsync

import "context"

// UpsertOp is one idempotent write: replace the fields of the document whose
// unique-key field equals KeyValue, inserting it if no document matches.
type UpsertOp struct {
	KeyField string
	KeyValue interface{}
	Fields   map[string]interface{}
}

// OpFailure records one operation that the store rejected. Index is the
// operation's position in the submitted batch and Key its unique-key value,
// so a failed row can be found and fixed by hand.
type OpFailure struct {
	Index int
	Key   interface{}
	Err   error
}

// BulkResult aggregates the outcome of one unordered batch. Failures holds
// per-operation rejections; the remaining operations still applied.
type BulkResult struct {
	Matched  int64
	Modified int64
	Upserted int64
	Failures []OpFailure
}

// Sink executes a batch of upserts against a named collection. The batch is
// unordered: one operation's failure must not prevent the others from
// applying, and no application order may be assumed. A returned error means
// the batch as a whole could not be executed.
type Sink interface {
	BulkUpsert(ctx context.Context, collection string, ops []UpsertOp) (BulkResult, error)
}

// Source fetches all rows of one worksheet as ordered column-name to cell
// mappings. The worksheet's first row is always the header.
type Source interface {
	FetchRows(ctx context.Context, worksheet string) ([]RawRow, error)
}
