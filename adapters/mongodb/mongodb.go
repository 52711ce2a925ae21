package mongodb

import (
	"context"
	"errors"
	"fmt"

	labsync "github.com/bhklab/lab-website-data-refresh"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sink implements labsync.Sink backed by one MongoDB database.
type Sink struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, config Config) (*Sink, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Sink{
		client: client,
		db:     client.Database(config.Database),
	}, nil
}

// Close disconnects from MongoDB.
func (s *Sink) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// BulkUpsert executes the operations as one unordered bulk write of
// $set-with-upsert updates. Operations rejected by the server come back as
// per-operation failures while the rest of the batch still applies; only a
// batch that could not execute at all returns an error.
func (s *Sink) BulkUpsert(ctx context.Context, collection string, ops []labsync.UpsertOp) (labsync.BulkResult, error) {
	res, err := s.db.Collection(collection).BulkWrite(ctx, writeModels(ops),
		options.BulkWrite().SetOrdered(false))

	result := labsync.BulkResult{}
	if res != nil {
		result.Matched = res.MatchedCount
		result.Modified = res.ModifiedCount
		result.Upserted = res.UpsertedCount
	}

	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) {
			result.Failures = bulkFailures(bwe, ops)
			return result, nil
		}
		return labsync.BulkResult{}, fmt.Errorf("bulk write failed: %w", err)
	}

	return result, nil
}

// writeModels converts sink operations to driver write models.
func writeModels(ops []labsync.UpsertOp) []mongo.WriteModel {
	models := make([]mongo.WriteModel, 0, len(ops))
	for _, op := range ops {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: op.KeyField, Value: op.KeyValue}}).
			SetUpdate(bson.M{"$set": bson.M(op.Fields)}).
			SetUpsert(true))
	}
	return models
}

// bulkFailures maps driver write errors back to the submitted operations so
// callers see which key values need manual remediation.
func bulkFailures(bwe mongo.BulkWriteException, ops []labsync.UpsertOp) []labsync.OpFailure {
	failures := make([]labsync.OpFailure, 0, len(bwe.WriteErrors))
	for _, we := range bwe.WriteErrors {
		var key interface{}
		if we.Index >= 0 && we.Index < len(ops) {
			key = ops[we.Index].KeyValue
		}
		failures = append(failures, labsync.OpFailure{
			Index: we.Index,
			Key:   key,
			Err:   fmt.Errorf("write error %d: %s", we.Code, we.Message),
		})
	}
	return failures
}
