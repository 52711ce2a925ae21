package mongodb

import (
	"reflect"
	"testing"
	"time"

	labsync "github.com/bhklab/lab-website-data-refresh"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid",
			config: Config{URI: "mongodb://localhost:27017", Database: "lab"},
		},
		{
			name:    "missing URI",
			config:  Config{Database: "lab"},
			wantErr: ErrMissingURI,
		},
		{
			name:    "missing database",
			config:  Config{URI: "mongodb://localhost:27017"},
			wantErr: ErrMissingDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteModels(t *testing.T) {
	syncedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ops := []labsync.UpsertOp{
		{
			KeyField: "url",
			KeyValue: "http://a",
			Fields: map[string]interface{}{
				"title":     "T",
				"url":       "http://a",
				"_syncedAt": syncedAt,
			},
		},
		{
			KeyField: "doi",
			KeyValue: "10.1000/xyz",
			Fields: map[string]interface{}{
				"title": "U",
				"doi":   "10.1000/xyz",
			},
		},
	}

	models := writeModels(ops)
	if len(models) != 2 {
		t.Fatalf("writeModels() returned %d models, want 2", len(models))
	}

	first, ok := models[0].(*mongo.UpdateOneModel)
	if !ok {
		t.Fatalf("models[0] is %T, want *mongo.UpdateOneModel", models[0])
	}
	if first.Upsert == nil || !*first.Upsert {
		t.Error("models[0] upsert flag not set")
	}

	wantFilter := bson.D{{Key: "url", Value: "http://a"}}
	if !reflect.DeepEqual(first.Filter, wantFilter) {
		t.Errorf("models[0] filter = %v, want %v", first.Filter, wantFilter)
	}

	update, ok := first.Update.(bson.M)
	if !ok {
		t.Fatalf("models[0] update is %T, want bson.M", first.Update)
	}
	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("models[0] update has no $set document")
	}
	if set["title"] != "T" || set["_syncedAt"] != syncedAt {
		t.Errorf("$set document = %v", set)
	}

	second := models[1].(*mongo.UpdateOneModel)
	wantFilter = bson.D{{Key: "doi", Value: "10.1000/xyz"}}
	if !reflect.DeepEqual(second.Filter, wantFilter) {
		t.Errorf("models[1] filter = %v, want %v", second.Filter, wantFilter)
	}
}

func TestBulkFailures(t *testing.T) {
	ops := []labsync.UpsertOp{
		{KeyField: "url", KeyValue: "http://a"},
		{KeyField: "url", KeyValue: "http://b"},
	}

	bwe := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Index: 1, Code: 121, Message: "Document failed validation"}},
			// An index outside the batch must not panic; the key is simply unknown.
			{WriteError: mongo.WriteError{Index: 9, Code: 8, Message: "unknown"}},
		},
	}

	failures := bulkFailures(bwe, ops)
	if len(failures) != 2 {
		t.Fatalf("bulkFailures() returned %d failures, want 2", len(failures))
	}

	if failures[0].Index != 1 || failures[0].Key != "http://b" {
		t.Errorf("failures[0] = %+v, want index 1 key http://b", failures[0])
	}
	if failures[0].Err == nil {
		t.Error("failures[0] has no error")
	}
	if failures[1].Key != nil {
		t.Errorf("failures[1] key = %v, want nil for out-of-range index", failures[1].Key)
	}
}
