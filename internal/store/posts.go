package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/melvinb/postfeed/internal/apperr"
	"github.com/melvinb/postfeed/internal/models"
)

func (s *PostStore) Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	post.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert post: %v", apperr.ErrPersistence, err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *PostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var post models.Post
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find post: %v", apperr.ErrPersistence, err)
	}
	return &post, nil
}

// All returns every post in store-native order. There is no pagination.
func (s *PostStore) All(ctx context.Context) ([]models.Post, error) {
	return s.find(ctx, bson.M{})
}

// ByOwner returns the posts whose userId equals the hex string form of the
// owning account's identifier.
func (s *PostStore) ByOwner(ctx context.Context, owner string) ([]models.Post, error) {
	return s.find(ctx, bson.M{"userId": owner})
}

func (s *PostStore) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find posts: %v", apperr.ErrPersistence, err)
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: decode posts: %v", apperr.ErrPersistence, err)
	}
	return posts, nil
}
