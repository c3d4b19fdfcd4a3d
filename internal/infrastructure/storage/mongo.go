package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultMongoTimeout = 10 * time.Second
	stateCollection     = "local_state"
)

// MongoConfig captures the minimal settings required to establish a MongoDB
// connection.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// ConnectMongo establishes a MongoDB client, verifies connectivity with a
// ping, and returns both the client and the selected database.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultMongoTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

type stateDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore implements the key-value contract over a single collection,
// one document per key.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(stateCollection)}
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc stateDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mongo get: %w", err)
	}
	return doc.Value, true, nil
}

func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		stateDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo set: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}
