package service

import (
	"context"
	"errors"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/codeyousef/portfolio-sub001/internal/repository"
)

// ErrInvalidRole is returned when a user payload names an unknown role.
var ErrInvalidRole = errors.New("invalid role")

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	Username    string      `json:"username" binding:"required"`
	Password    string      `json:"password" binding:"required"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role" binding:"required"`
}

// UpdateUserInput carries the mutable fields of an account. Username is
// immutable and password changes are optional.
type UpdateUserInput struct {
	Password    string      `json:"password"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role" binding:"required"`
}

// UserResponse is the outward shape of an account. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID            int64       `json:"id"`
	Username      string      `json:"username"`
	DisplayName   string      `json:"display_name"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	Active        bool        `json:"active"`
	PasswordStale bool        `json:"password_stale"`
	LastLogin     *time.Time  `json:"last_login,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// UserService implements account administration.
type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, input CreateUserInput) (*UserResponse, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*UserResponse, error)
}

type userService struct {
	repo  repository.UserRepository
	clock Clock
}

// NewUserService creates a new UserService instance.
func NewUserService(repo repository.UserRepository, clock Clock) UserService {
	return &userService{repo: repo, clock: clock}
}

func (s *userService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i], now))
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*UserResponse, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user, now), nil
}

func (s *userService) Update(ctx context.Context, id int64, input UpdateUserInput) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.DisplayName = input.DisplayName
	user.Email = input.Email
	user.Role = input.Role
	now := s.clock.Now()
	user.UpdatedAt = now

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user, now), nil
}

func toUserResponse(user *models.User, now time.Time) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		DisplayName:   user.DisplayName,
		Email:         user.Email,
		Role:          user.Role,
		Active:        user.IsActive(now),
		PasswordStale: user.PasswordStale(now),
		LastLogin:     user.LastLogin,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
