package preset

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gradgen/gradgen/pkg/errors"
)

// MongoStore keeps presets in a MongoDB collection, one document per
// preset keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection
// with a ping before returning.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "mongo at %s", uri)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "mongo at %s", uri)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database("gradgen").Collection("presets"),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, p *Preset) error {
	if !ValidName(p.Name) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid preset name %q", p.Name)
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"name": p.Name}, p, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "save preset %q", p.Name)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, name string) (*Preset, error) {
	var p Preset
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "get preset %q", name)
	}
	return &p, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Preset, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list presets")
	}
	defer cur.Close(ctx)

	var out []Preset
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "delete preset %q", name)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound(name)
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
