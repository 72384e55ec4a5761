package middleware

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/auth"
	"github.com/melvinb/postfeed/internal/httpx"
)

type ctxKey int

const subjectKey ctxKey = iota

// RequireAuth resolves the Authorization header to an account identifier and
// injects it into the request context. Requests without a resolvable subject
// are rejected before reaching the handler.
func RequireAuth(codec *auth.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := codec.ResolveSubject(r.Header.Get("Authorization"), time.Now())
			if err != nil {
				httpx.Fail(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the account identifier stored by RequireAuth.
func Subject(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(subjectKey).(primitive.ObjectID)
	return id, ok
}
