package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/apperr"
)

var testSecret = []byte("test-signing-key")

func TestCodec_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	subject := primitive.NewObjectID()
	now := time.Now()

	tok, err := codec.Issue(subject, now)
	require.NoError(t, err)

	got, err := codec.Verify(tok, now)
	require.NoError(t, err)
	require.Equal(t, subject, got)

	// Still valid just before expiry, rejected right after.
	_, err = codec.Verify(tok, now.Add(TokenLifetime-time.Minute))
	require.NoError(t, err)
	_, err = codec.Verify(tok, now.Add(TokenLifetime+time.Minute))
	require.ErrorIs(t, err, apperr.ErrNoToken)
}

func TestCodec_Verify_CollapsesAllFailures(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	subject := primitive.NewObjectID()
	now := time.Now()

	valid, err := codec.Issue(subject, now)
	require.NoError(t, err)

	tampered := valid[:len(valid)-1]
	if strings.HasSuffix(valid, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	wrongKey, err := NewCodec([]byte("some-other-key")).Issue(subject, now)
	require.NoError(t, err)

	// HS256 with the right key must still be rejected: the algorithm is
	// pinned, not taken from the token header.
	hs256 := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name: `{"$oid":"` + subject.Hex() + `"}`,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	wrongAlg, err := hs256.SignedString(testSecret)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"malformed":       "not-a-token",
		"two segments":    "abc.def",
		"tampered":        tampered,
		"wrong key":       wrongKey,
		"wrong algorithm": wrongAlg,
	} {
		_, err := codec.Verify(tok, now)
		require.ErrorIs(t, err, apperr.ErrNoToken, name)
	}
}

func TestCodec_Verify_BadSubjectClaim(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	now := time.Now()

	for name, claim := range map[string]string{
		"not json":    "plain-hex-subject",
		"missing oid": `{"id":"abc"}`,
		"bad hex":     `{"$oid":"zzzz"}`,
	} {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
			Name: claim,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}).SignedString(testSecret)
		require.NoError(t, err)

		_, err = codec.Verify(tok, now)
		require.ErrorIs(t, err, apperr.ErrNoToken, name)
	}
}

func TestCodec_Issue_WireShape(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	subject := primitive.NewObjectID()
	now := time.Unix(1_700_000_000, 0)

	tok, err := codec.Issue(subject, now)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	var header struct {
		Alg string `json:"alg"`
	}
	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(headerJSON, &header))
	require.Equal(t, "HS384", header.Alg)

	var payload struct {
		Name string `json:"name"`
		Exp  int64  `json:"exp"`
		Iat  int64  `json:"iat"`
	}
	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payloadJSON, &payload))

	require.Equal(t, now.Unix(), payload.Iat)
	require.Equal(t, now.Add(21*time.Hour).Unix(), payload.Exp)

	var ref struct {
		OID string `json:"$oid"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload.Name), &ref))
	require.Equal(t, subject.Hex(), ref.OID)
}

func TestCodec_Verify_InternalCausePreserved(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	_, err := codec.Verify("garbage", time.Now())
	require.Error(t, err)
	require.True(t, errors.Is(err, apperr.ErrNoToken))
	require.NotEqual(t, apperr.ErrNoToken.Error(), err.Error(), "cause should stay wrapped for logs")
}
