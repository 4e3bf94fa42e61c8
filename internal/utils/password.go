package utils

import (
	"fmt"
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// placeholderHash is compared against when the username does not exist, so an
// unknown user costs the same bcrypt work as a wrong password.
var placeholderHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
	return hash
})

// HashPassword hashes a plaintext password using bcrypt. Passwords bcrypt cannot
// take in full are an ErrValidation.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password is longer than %d bytes", apperrors.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash. An empty hash never matches.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck does the work of a failed CheckPasswordHash without a real hash.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
}
