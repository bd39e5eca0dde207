// Package mongodoc stores each entry as a document in a MongoDB collection.
//
// Payloads must serialize to a JSON object (codec.JSON of a struct or map):
// Write maps the bytes onto a BSON document and merges the document ID field
// into it; Read excludes that field (and Mongo's _id) via projection so the
// returned shape matches the caller's type exactly.
package mongodoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aligent/hybridstore/durable"
)

// DefaultIDField carries the document identifier inside stored documents.
const DefaultIDField = "documentId"

var ErrNilCollection = errors.New("mongodoc: nil collection")

// Docs adapts a mongo collection to the durable tier contract. The mongo
// client is shared and owned by the caller; Close is a no-op.
type Docs struct {
	coll    *mongo.Collection
	idField string
}

var _ durable.Store = (*Docs)(nil)

type Config struct {
	Collection *mongo.Collection
	IDField    string // identifier field name; "" => DefaultIDField
}

func New(cfg Config) (*Docs, error) {
	if cfg.Collection == nil {
		return nil, ErrNilCollection
	}
	idField := cfg.IDField
	if idField == "" {
		idField = DefaultIDField
	}
	return &Docs{coll: cfg.Collection, idField: idField}, nil
}

func (d *Docs) Read(ctx context.Context, key string) ([]byte, bool, error) {
	proj := bson.M{"_id": 0, d.idField: 0}
	var doc bson.M
	err := d.coll.FindOne(ctx,
		bson.M{d.idField: key},
		options.FindOne().SetProjection(proj),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("mongodoc: marshal document %q: %w", key, err)
	}
	return payload, true, nil
}

// Write upserts: replace-or-insert keyed on the ID field.
func (d *Docs) Write(ctx context.Context, key string, payload []byte) error {
	var doc bson.M
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("mongodoc: payload for %q is not a JSON object: %w", key, err)
	}
	doc[d.idField] = key
	_, err := d.coll.ReplaceOne(ctx,
		bson.M{d.idField: key},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete is idempotent: a zero-match DeleteOne is not an error.
func (d *Docs) Delete(ctx context.Context, key string) error {
	_, err := d.coll.DeleteOne(ctx, bson.M{d.idField: key})
	return err
}

func (d *Docs) Close(context.Context) error { return nil }
