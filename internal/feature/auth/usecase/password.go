package usecase

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Interactive-login cost, matching the stored
// hashes produced since the first deployment; changing them invalidates
// every existing password.
const (
	scryptN      = 1024
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

const saltBytes = 16

// newSalt returns a fresh random salt, hex-encoded.
func newSalt() (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// hashPassword derives the hex-encoded scrypt hash of a password.
func hashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// matchPassword reports whether a candidate password matches the stored
// hash. The comparison is constant-time.
func matchPassword(password, salt, storedHash string) bool {
	candidate, err := hashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}

// HashNewPassword derives a fresh salt and the scrypt hash of a password
// in one step, for callers outside this package that set passwords.
func HashNewPassword(password string) (salt, hash string, err error) {
	salt, err = newSalt()
	if err != nil {
		return "", "", err
	}
	hash, err = hashPassword(password, salt)
	if err != nil {
		return "", "", err
	}
	return salt, hash, nil
}

// hashResetToken converts the raw token mailed to a user into the form
// stored in the database.
func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

const resetTokenBytes = 20

// newResetToken returns a fresh random reset token, hex-encoded.
func newResetToken() (string, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
