package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/common/security"
	"github.com/mrunankdekhane/task-manager/internal/domain/model"
	"github.com/mrunankdekhane/task-manager/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// Register validates the request, hashes the password and persists a new
// user. Username/email collisions surface as common.ErrDuplicateIdentity.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", common.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("malformed email address: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.HashedPassword = "" // Clear hash before returning
	return user, nil
}

// Authenticate resolves the user by email and verifies the password. A
// missing account and a wrong password both answer
// common.ErrInvalidCredentials so the caller cannot tell which factor
// failed; the dummy compare keeps the timing profile uniform.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			security.CheckPasswordHash(password, security.DummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	user.HashedPassword = ""
	return user, nil
}
