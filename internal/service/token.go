package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token. The token is
// deliberately thin: it binds a token id to a username. Role and account
// status are re-read from the user record on every request, so role
// changes and deactivation take effect immediately.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService mints and validates session tokens.
type TokenService interface {
	Mint(username string) (token string, tokenID string, err error)
	Validate(tokenString string) (*SessionClaims, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret []byte
	expiry time.Duration
	clock  Clock
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(secret string, expiry time.Duration, clock Clock) TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
		clock:  clock,
	}
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}

func (s *tokenService) Mint(username string) (string, string, error) {
	now := s.clock.Now()
	tokenID := uuid.NewString()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return signed, tokenID, nil
}

func (s *tokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Username == "" || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
