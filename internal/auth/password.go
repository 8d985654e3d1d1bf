package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 100_000
	KeyLength  = 32
	SaltBytes  = 16
)

// GenerateSalt returns 16 random bytes as 32 hex characters.
func GenerateSalt() (string, error) {
	b := make([]byte, SaltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives the hex PBKDF2-HMAC-SHA256 key for password. The salt's
// text, not its decoded bytes, is the KDF salt. A fresh salt is generated
// when salt is empty; the salt actually used is returned.
func HashPassword(password, salt string) (hash string, usedSalt string, err error) {
	if salt == "" {
		if salt, err = GenerateSalt(); err != nil {
			return "", "", err
		}
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), Iterations, KeyLength, sha256.New)
	return hex.EncodeToString(key), salt, nil
}

// VerifyPassword recomputes the hash with the stored salt and compares in
// constant time.
func VerifyPassword(password, salt, expectedHash string) bool {
	if salt == "" || expectedHash == "" {
		return false
	}
	computed, _, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1
}
