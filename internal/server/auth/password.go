package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const saltLength = 32

// GenerateSalt returns a fresh random per-user salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword derives an Argon2id hash of password with the given salt.
// The clear password is never persisted.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// VerifyPassword reports whether the candidate password matches the stored
// hash, in constant time.
func VerifyPassword(storedHash, password, salt []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(storedHash, candidate) == 1
}
