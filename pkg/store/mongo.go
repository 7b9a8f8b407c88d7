package store

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
)

const (
	defaultDatabase   = "forcegraph"
	layoutsCollection = "layouts"
)

// MongoStore persists layouts in a MongoDB collection, keyed by layout ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection
// with a ping before returning. An empty database name selects the
// default "forcegraph" database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connecting to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "pinging MongoDB")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(layoutsCollection),
	}, nil
}

// Put persists a layout, assigning a UUID if it has none. Existing
// documents with the same ID are replaced.
func (s *MongoStore) Put(ctx context.Context, layout graph.Layout) (graph.Layout, error) {
	if layout.ID == "" {
		layout.ID = uuid.NewString()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": layout.ID}, layout, opts); err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeStorage, err, "storing layout %s", layout.ID)
	}
	return layout, nil
}

// Get retrieves a layout by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (graph.Layout, error) {
	var layout graph.Layout
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&layout)
	if err == mongo.ErrNoDocuments {
		return graph.Layout{}, errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
	}
	if err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeStorage, err, "loading layout %s", id)
	}
	return layout, nil
}

// List returns all stored layouts ordered by ID.
func (s *MongoStore) List(ctx context.Context) ([]graph.Layout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "listing layouts")
	}
	defer cursor.Close(ctx)

	var layouts []graph.Layout
	if err := cursor.All(ctx, &layouts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decoding layouts")
	}
	return layouts, nil
}

// Delete removes a layout by ID. Deleting a missing layout is not an error.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "deleting layout %s", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
