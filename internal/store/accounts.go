package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/melvinb/postfeed/internal/apperr"
	"github.com/melvinb/postfeed/internal/models"
)

// Insert stores a new account and returns its assigned identifier. A unique
// email violation surfaces as apperr.ErrDuplicateAccount; everything else as
// apperr.ErrPersistence.
func (s *AccountStore) Insert(ctx context.Context, acc *models.Account) (primitive.ObjectID, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	now := time.Now()
	acc.CreatedAt = now
	acc.LastUpVote = now

	res, err := s.col.InsertOne(ctx, acc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("%w: %v", apperr.ErrDuplicateAccount, err)
		}
		return primitive.NilObjectID, fmt.Errorf("%w: insert account: %v", apperr.ErrPersistence, err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *AccountStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var acc models.Account
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find account: %v", apperr.ErrPersistence, err)
	}
	return &acc, nil
}

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var acc models.Account
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find account: %v", apperr.ErrPersistence, err)
	}
	return &acc, nil
}

// Replace swaps out the whole mutable field set in one update and returns the
// post-update record. createdAt and lastUpVote are left untouched.
func (s *AccountStore) Replace(ctx context.Context, id primitive.ObjectID, email, hashedPassword, firstName, lastName string) (*models.Account, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"email":     email,
		"password":  hashedPassword,
		"firstName": firstName,
		"lastName":  lastName,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var acc models.Account
	if err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", apperr.ErrDuplicateAccount, err)
		}
		return nil, fmt.Errorf("%w: update account: %v", apperr.ErrPersistence, err)
	}
	return &acc, nil
}

// Delete removes the account and reports apperr.ErrNotFound when no record
// matched.
func (s *AccountStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete account: %v", apperr.ErrPersistence, err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
