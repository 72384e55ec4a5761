package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a user record in the Mongo accounts collection. Field names
// match the existing collection, so they stay camelCase on the wire.
type Account struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Password   string             `bson:"password" json:"-"` // digest, never serialized
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	LastUpVote time.Time          `bson:"lastUpVote" json:"-"`
}

// AccountView is the external projection of an account.
type AccountView struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RemovedAccountView is returned by DELETE /user/remove with the fields the
// account had just before deletion.
type RemovedAccountView struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Removed   bool   `json:"removed"`
}

// AuthData pairs a freshly issued token with the account it belongs to.
type AuthData struct {
	Token string      `json:"token"`
	User  AccountView `json:"user"`
}

// View projects the account for external use.
func (a *Account) View() AccountView {
	return AccountView{Email: a.Email, FirstName: a.FirstName, LastName: a.LastName}
}

// RegisterRequest is the JSON body for POST /auth/register and PUT /user/edit.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
