package auth

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashPassword returns the hex SHA3-384 digest of the plaintext. The scheme
// is unsalted so that digests stay comparable with the records already in the
// accounts collection; identical passwords therefore produce identical
// digests, which is a known weakness of the stored format.
func HashPassword(plaintext string) string {
	sum := sha3.Sum384([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored digest against a freshly hashed candidate
// in constant time.
func CheckPassword(storedDigest, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(storedDigest), []byte(HashPassword(candidate))) == 1
}
