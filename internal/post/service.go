// Package post implements ownership-scoped post creation and listing.
package post

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/models"
)

// Store defines the interface for post persistence.
type Store interface {
	Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	All(ctx context.Context) ([]models.Post, error)
	ByOwner(ctx context.Context, owner string) ([]models.Post, error)
}

// AccountFinder looks up the author at creation time; the owning identifier
// is verified against the store, not just trusted from the token.
type AccountFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
}

type Service struct {
	posts    Store
	accounts AccountFinder
}

func NewService(posts Store, accounts AccountFinder) *Service {
	return &Service{posts: posts, accounts: accounts}
}

// Create stamps a new post with the author's current first name, the hex
// form of the subject, and empty comment/upvote sequences, then re-reads the
// inserted document and returns it. A read-back failure leaves the insert
// ambiguous and fails the whole operation.
func (s *Service) Create(ctx context.Context, subject primitive.ObjectID, req models.CreatePostRequest) (*models.Post, error) {
	author, err := s.accounts.FindByID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("author lookup: %w", err)
	}

	id, err := s.posts.Insert(ctx, &models.Post{
		UserID:    subject.Hex(),
		Title:     req.Title,
		Content:   req.Content,
		FirstName: author.FirstName,
		Comments:  []models.Comment{},
		UpVotes:   []string{},
	})
	if err != nil {
		return nil, err
	}
	return s.posts.FindByID(ctx, id)
}

// ListAll returns every post, unfiltered and unpaginated.
func (s *Service) ListAll(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// ListByOwner returns the posts owned by the subject.
func (s *Service) ListByOwner(ctx context.Context, subject primitive.ObjectID) ([]models.Post, error) {
	posts, err := s.posts.ByOwner(ctx, subject.Hex())
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}
