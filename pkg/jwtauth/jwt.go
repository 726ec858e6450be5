// Package jwtauth issues and validates the HS256 session tokens the
// HTTP API uses after login.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds token signing configuration
type Config struct {
	SigningKey      string
	ExpirationHours int
}

// UserClaims are the claims embedded in a session token.
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil issues and validates tokens.
type JWTUtil struct {
	config Config
}

// New creates a JWT utility with the given configuration.
func New(config Config) (*JWTUtil, error) {
	if config.SigningKey == "" {
		return nil, errors.New("signing key is required")
	}
	if config.ExpirationHours <= 0 {
		config.ExpirationHours = 24
	}
	return &JWTUtil{config: config}, nil
}

// GenerateToken creates a signed token for the user.
func (j *JWTUtil) GenerateToken(userID int64, username, role string) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(j.config.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.SigningKey))
}

// ValidateToken parses and verifies a token, returning its claims.
func (j *JWTUtil) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.config.SigningKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
