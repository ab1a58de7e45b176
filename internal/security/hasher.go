package security

import (
	"crypto/sha512"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

const (
	defaultIterations = 10000
	keyLength         = 64
)

// Hasher derives password hashes with PBKDF2-HMAC-SHA512. The application-wide
// secret doubles as the salt, so the same plaintext always encodes to the same
// hash under a given configuration; verification re-encodes the attempt and
// compares.
type Hasher struct {
	secret     []byte
	iterations int
}

func NewHasher(secret string, iterations int) *Hasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	return &Hasher{secret: []byte(secret), iterations: iterations}
}

// Encode returns the base64 hash of plaintext.
func (h *Hasher) Encode(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), h.secret, h.iterations, keyLength, sha512.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Matches reports whether plaintext encodes to hash.
func (h *Hasher) Matches(plaintext, hash string) bool {
	return h.Encode(plaintext) == hash
}
