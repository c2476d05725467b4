package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todoapp/internal/models"
	"todoapp/internal/repository"
	"todoapp/internal/util"

	"github.com/google/uuid"
)

// AuthService validates credentials and issues session tokens.
type AuthService struct {
	users      repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService builds an AuthService. ttlHours <= 0 falls back to 24.
func NewAuthService(users repository.UserRepository, jwtSecret, jwtIssuer string, ttlHours, bcryptCost int) *AuthService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		tokenTTL:   time.Duration(ttlHours) * time.Hour,
		bcryptCost: bcryptCost,
	}
}

// AuthResult is a signed session token plus the user's public profile.
type AuthResult struct {
	AccessToken string
	User        models.User
}

// Authenticate checks email/password and returns a fresh token. Unknown email
// and wrong password both fail with ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates a new account and returns the same result shape as
// Authenticate. A taken email fails with ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if err := util.ValidateEmail(email); err != nil {
		return nil, validationErr(err)
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, validationErr(err)
	}
	if err := util.ValidateName(name); err != nil {
		return nil, validationErr(err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := util.GenerateToken(s.jwtSecret, s.jwtIssuer, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: *user}, nil
}
