// Package auth implements the authentication core: password hashing, the
// HS384 token codec, and bearer-token subject resolution.
package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/apperr"
)

// TokenLifetime is part of the token protocol contract and must not change
// while tokens issued by older deployments are still in flight.
const TokenLifetime = 21 * time.Hour

// Claims is the wire shape of the token payload: {name, exp, iat}. The name
// claim carries the subject as a JSON-encoded extended-JSON object reference,
// e.g. {"$oid":"65f2..."}, matching tokens already in circulation.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed identity tokens with a symmetric key.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Issue mints an HS384 token for the subject with iat = now and
// exp = now + TokenLifetime.
func (c *Codec) Issue(subject primitive.ObjectID, now time.Time) (string, error) {
	claims := Claims{
		Name: fmt.Sprintf(`{"$oid":%q}`, subject.Hex()),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(c.secret)
}

// Verify checks structure, signature, algorithm, and expiry, then extracts
// the subject. Expiry is strict: golang-jwt applies no leeway unless asked,
// and none is asked for here. Every failure mode collapses into ErrNoToken;
// the underlying cause is wrapped for logs but never distinguishable by a
// caller comparing with errors.Is.
func (c *Codec) Verify(token string, now time.Time) (primitive.ObjectID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS384.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", apperr.ErrNoToken, err)
	}
	return subjectFromClaim(claims.Name)
}

// subjectFromClaim parses the {"$oid": "<hex>"} name claim into an ObjectID.
func subjectFromClaim(name string) (primitive.ObjectID, error) {
	var ref struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal([]byte(name), &ref); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: subject claim: %v", apperr.ErrNoToken, err)
	}
	id, err := primitive.ObjectIDFromHex(ref.OID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: subject claim: %v", apperr.ErrNoToken, err)
	}
	return id, nil
}
