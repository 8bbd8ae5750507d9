// internal/auth/service.go
// Token verification for the external identity provider.
// Signup, sessions and password handling all live in Supabase; this service
// only checks that a bearer token was minted by it.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Claims are the token claims we care about from the provider.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Config holds token verification settings
type Config struct {
	JWTSecret string
	Issuer    string
}

type Service interface {
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

type service struct {
	config *Config
}

func NewService(config *Config) Service {
	return &service{config: config}
}

// ValidateToken parses and verifies a provider-issued JWT (HS256).
func (s *service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.config.Issuer != "" && claims.Issuer != s.config.Issuer {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
