package auth

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/apperr"
)

// ResolveSubject turns an Authorization header value into an account
// identifier. The "Bearer " prefix is stripped when present but not required.
// A missing header and an invalid token are deliberately the same outcome.
func (c *Codec) ResolveSubject(header string, now time.Time) (primitive.ObjectID, error) {
	if header == "" {
		return primitive.NilObjectID, apperr.ErrNoToken
	}
	return c.Verify(strings.TrimPrefix(header, "Bearer "), now)
}
