package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	iterations = 100_000
	keySize    = 32
)

// ErrMalformedDigest is returned when a stored digest cannot be decoded.
var ErrMalformedDigest = errors.New("malformed password digest")

// Hash derives a salted PBKDF2-HMAC-SHA256 digest from a plaintext password.
// A fresh random salt is generated on every call, so hashing the same
// password twice yields different digests. The result is
// base64(salt || derived key).
func Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return base64.StdEncoding.EncodeToString(append(salt, key...)), nil
}

// Verify re-derives a key from the password using the salt embedded in the
// digest and compares it to the stored key in constant time. A digest that
// cannot be decoded reports ErrMalformedDigest instead of panicking.
func Verify(digest, password string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return false, ErrMalformedDigest
	}
	if len(raw) <= saltSize {
		return false, ErrMalformedDigest
	}

	salt, stored := raw[:saltSize], raw[saltSize:]
	derived := pbkdf2.Key([]byte(password), salt, iterations, len(stored), sha256.New)

	return hmac.Equal(stored, derived), nil
}
