package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in a post. No operation creates comments yet; the shape
// exists for compatibility with the stored documents.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Post is a document in the Mongo posts collection. UserID holds the hex
// string form of the owning account's ObjectID, and FirstName is a snapshot
// of the author's name at creation time; later account edits do not touch it.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	FirstName string             `bson:"firstName" json:"firstName"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	UpVotes   []string           `bson:"upVotes" json:"upVotes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreatePostRequest is the JSON body for POST /post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
