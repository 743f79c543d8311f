package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/codeyousef/portfolio-sub001/internal/repository"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned on any login failure. It never
	// distinguishes a wrong username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSession is returned when a session token cannot be
	// resolved to an active user.
	ErrInvalidSession = errors.New("invalid session")
)

// sessionKeyPrefix namespaces session records in Redis.
const sessionKeyPrefix = "session:"

// LoginResponse is returned to the handler after a successful login.
type LoginResponse struct {
	Token       string      `json:"-"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Role        models.Role `json:"role"`
	ExpiresIn   int64       `json:"expires_in"`
}

// AuthService issues and revokes sessions and resolves them back to users.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// ResolveSession maps a session token to its user. It fails with
	// ErrInvalidSession when the token is malformed, expired, revoked,
	// or the account is gone or no longer active.
	ResolveSession(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	redis    *redis.Client
	clock    Clock
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, redisClient *redis.Client, clock Clock) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		redis:    redisClient,
		clock:    clock,
	}
}

// VerifyPassword checks a plaintext credential against a stored bcrypt
// hash. A malformed hash counts as a failed verification, never a panic.
func VerifyPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}

// HashPassword derives a bcrypt hash for storage.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := s.tokens.Mint(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	// The Redis record is the revocable half of the session: logout
	// deletes it, expiry ages it out alongside the token itself.
	if err := s.redis.Set(ctx, sessionKeyPrefix+tokenID, user.Username, s.tokens.Expiry()).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	now := s.clock.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to stamp last login: %w", err)
	}

	return &LoginResponse{
		Token:       token,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		ExpiresIn:   int64(s.tokens.Expiry().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return ErrInvalidSession
	}
	if err := s.redis.Del(ctx, sessionKeyPrefix+claims.ID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	stored, err := s.redis.Get(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil || stored != claims.Username {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if !user.IsActive(s.clock.Now()) {
		return nil, ErrInvalidSession
	}

	return user, nil
}
