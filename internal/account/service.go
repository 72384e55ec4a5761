// Package account implements registration, login, and account management on
// top of the Mongo account store and the token codec.
package account

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/apperr"
	"github.com/melvinb/postfeed/internal/auth"
	"github.com/melvinb/postfeed/internal/models"
)

// Store defines the interface for account persistence.
type Store interface {
	Insert(ctx context.Context, acc *models.Account) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Replace(ctx context.Context, id primitive.ObjectID, email, hashedPassword, firstName, lastName string) (*models.Account, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Auditor records authentication events. Recording is best-effort and never
// fails the surrounding operation.
type Auditor interface {
	Record(ctx context.Context, action, subject, email string) error
}

// Service composes the store, hasher, and token codec into the account
// operations.
type Service struct {
	store Store
	codec *auth.Codec
	audit Auditor
}

// NewService constructs a Service. audit may be nil when no audit trail is
// configured.
func NewService(store Store, codec *auth.Codec, audit Auditor) *Service {
	return &Service{store: store, codec: codec, audit: audit}
}

// Register creates an account, hashes the password, and issues a token for
// the freshly inserted record. A failure on the read-back leaves the insert
// ambiguous; the whole operation reports it rather than retrying.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthData, error) {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("%w: missing required field", apperr.ErrBadCredentials)
	}

	id, err := s.store.Insert(ctx, &models.Account{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  auth.HashPassword(req.Password),
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(saved.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.record(ctx, "register", saved)
	return &models.AuthData{Token: token, User: saved.View()}, nil
}

// Login verifies credentials and mints a token. Unknown email, wrong
// password, and empty fields are indistinguishable to the caller; the
// wrapped messages stay distinct for logs and tests.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthData, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: missing required field", apperr.ErrBadCredentials)
	}

	acc, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: email lookup: %v", apperr.ErrBadCredentials, err)
	}
	if !auth.CheckPassword(acc.Password, req.Password) {
		return nil, fmt.Errorf("%w: password mismatch", apperr.ErrBadCredentials)
	}

	token, err := s.codec.Issue(acc.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.record(ctx, "login", acc)
	return &models.AuthData{Token: token, User: acc.View()}, nil
}

// WhoAmI returns the view of the account behind a resolved subject.
func (s *Service) WhoAmI(ctx context.Context, subject primitive.ObjectID) (*models.AccountView, error) {
	acc, err := s.store.FindByID(ctx, subject)
	if err != nil {
		return nil, err
	}
	view := acc.View()
	return &view, nil
}

// Edit replaces the full mutable field set in one update, re-hashing the
// password, and returns the post-update view.
func (s *Service) Edit(ctx context.Context, subject primitive.ObjectID, req models.RegisterRequest) (*models.AccountView, error) {
	acc, err := s.store.Replace(ctx, subject, req.Email, auth.HashPassword(req.Password), req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	view := acc.View()
	return &view, nil
}

// Remove reads the account first so its fields can be returned, then deletes
// it.
func (s *Service) Remove(ctx context.Context, subject primitive.ObjectID) (*models.RemovedAccountView, error) {
	acc, err := s.store.FindByID(ctx, subject)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, subject); err != nil {
		return nil, err
	}

	s.record(ctx, "remove", acc)
	return &models.RemovedAccountView{
		Email:     acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Removed:   true,
	}, nil
}

func (s *Service) record(ctx context.Context, action string, acc *models.Account) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, action, acc.ID.Hex(), acc.Email); err != nil {
		log.Printf("audit %s: %v", action, err)
	}
}
