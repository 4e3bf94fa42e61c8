package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errEmptySecret = errors.New("jwt secret is empty")

// GenerateJWT signs an HS256 access token whose subject is the account ID and
// returns it together with its expiry time.
func GenerateJWT(accountID, secret string, ttl time.Duration, issuer string) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errEmptySecret
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT checks the signature, the algorithm and the time claims of
// an access token. Tokens without an expiry are rejected.
func ParseAndValidateJWT(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	if secret == "" {
		return nil, errEmptySecret
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
