// Package store holds the persistence layer: the Mongo account and post
// collections, the Postgres audit trail, and the Redis feed cache.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// opTimeout bounds every store call. The persistence operations are all
// single-document reads and writes, so a conservative single-digit bound is
// plenty.
const opTimeout = 5 * time.Second

func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// AccountStore handles account CRUD against the users collection.
type AccountStore struct {
	col *mongo.Collection
}

func NewAccountStore(db *mongo.Database, collection string) *AccountStore {
	return &AccountStore{col: db.Collection(collection)}
}

// EnsureIndexes creates the unique email index. Inserts that violate it are
// what makes duplicate registration distinguishable from other failures.
func (s *AccountStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// PostStore handles post persistence against the posts collection.
type PostStore struct {
	col *mongo.Collection
}

func NewPostStore(db *mongo.Database, collection string) *PostStore {
	return &PostStore{col: db.Collection(collection)}
}
