// Package auth implements credential hashing and session token handling.
package auth

import (
	"github.com/dmitrijs2005/earntrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256-signed token whose subject is the user id.
// Tokens carry no expiry claim: a token stays valid until the secret changes.
func GenerateToken(userID string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the token signature and returns the subject
// claim. A bad signature or malformed token yields ErrInvalidToken; a valid
// token without a subject yields ErrTokenMissingSubject.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrTokenMissingSubject
	}

	return claims.Subject, nil
}
