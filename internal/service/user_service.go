package service

import (
	"context"
	"strings"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/google/uuid"
)

// UserService handles business logic for user records
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser creates a new user record. The password hash is stored
// opaquely; hashing and verification belong to the calling application.
func (s *UserService) CreateUser(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	if len(username) > domain.MaxUsernameLength {
		return nil, domain.ErrNameTooLong
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if !strings.Contains(email, "@") || len(email) > domain.MaxEmailLength {
		return nil, domain.ErrInvalidInput
	}

	if passwordHash == "" {
		return nil, domain.ErrInvalidInput
	}

	return s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	return s.userRepo.GetByEmail(ctx, email)
}

// DeleteUser removes a user along with their budgets and transactions
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
