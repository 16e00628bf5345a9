// Package mongo implements every concept's storage interface on a
// MongoDB database. Each entity kind lives in its own collection;
// cross-collection invariants (reaction triple uniqueness, one thread
// per (book, section)) are backed by unique indexes.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelfmates/shelfmates/shared/config"
	"github.com/shelfmates/shelfmates/shared/logger"
)

type Storage struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

func New(cfg *config.Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Public.StorageTimeout.Std())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Private.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	s := &Storage{
		client:  client,
		db:      client.Database(cfg.Public.MongoDatabase),
		timeout: cfg.Public.StorageTimeout.Std(),
	}
	if err := s.ensureIndexes(); err != nil {
		return nil, err
	}

	logger.Log.Info("connected to mongodb", "database", cfg.Public.MongoDatabase)
	return s, nil
}

func (s *Storage) Cleanup() error {
	ctx, cancel := s.opCtx()
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping reports whether the database is reachable (readiness probes).
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// opCtx bounds a single storage call. Callers own retry/timeout policy
// above this layer; here we only guarantee no call hangs forever.
func (s *Storage) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *Storage) threads() *mongo.Collection   { return s.db.Collection("threads") }
func (s *Storage) comments() *mongo.Collection  { return s.db.Collection("comments") }
func (s *Storage) reactions() *mongo.Collection { return s.db.Collection("reactions") }
func (s *Storage) books() *mongo.Collection     { return s.db.Collection("books") }
func (s *Storage) progress() *mongo.Collection  { return s.db.Collection("progress") }
func (s *Storage) profiles() *mongo.Collection  { return s.db.Collection("profiles") }
func (s *Storage) matches() *mongo.Collection   { return s.db.Collection("matches") }
func (s *Storage) messages() *mongo.Collection  { return s.db.Collection("messages") }

func (s *Storage) ensureIndexes() error {
	ctx, cancel := s.opCtx()
	defer cancel()

	for collection, indexes := range map[*mongo.Collection][]mongo.IndexModel{
		s.threads(): {
			{
				Keys:    bson.D{{Key: "book", Value: 1}, {Key: "section", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		s.comments(): {
			{Keys: bson.D{{Key: "parent", Value: 1}}},
			{Keys: bson.D{{Key: "thread", Value: 1}}},
		},
		s.reactions(): {
			{
				Keys:    bson.D{{Key: "reactor", Value: 1}, {Key: "comment", Value: 1}, {Key: "kind", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "comment", Value: 1}}},
		},
		s.progress(): {
			{
				Keys:    bson.D{{Key: "reader", Value: 1}, {Key: "book", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		s.profiles(): {
			{Keys: bson.D{{Key: "genres", Value: 1}}},
		},
		s.matches(): {
			{Keys: bson.D{{Key: "proposer", Value: 1}}},
			{Keys: bson.D{{Key: "recipient", Value: 1}}},
		},
		s.messages(): {
			{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "recipient", Value: 1}, {Key: "created_at", Value: 1}}},
		},
	} {
		if len(indexes) == 0 {
			continue
		}
		if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
