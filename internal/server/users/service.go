package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/server/auth"
	"github.com/poseform/formtrack/internal/server/config"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a user with a freshly salted Argon2id password hash.
// Returns common.ErrValidation for empty/invalid fields and
// common.ErrDuplicateEmail when the email is taken.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || password == "" {
		return nil, fmt.Errorf("name and password are required: %w", common.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q: %w", email, common.ErrValidation)
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: auth.HashPassword([]byte(password), salt),
		Salt:         salt,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed bearer token with the
// user. A missing user and a wrong password are indistinguishable to the
// caller: both return common.ErrInvalidLogin.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrInvalidLogin
		}
		return "", nil, common.ErrInternal
	}

	if !auth.VerifyPassword(user.PasswordHash, []byte(password), user.Salt) {
		return "", nil, common.ErrInvalidLogin
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user, nil
}

// GetByID loads one user. The caller is responsible for checking that the
// requested id matches the verified identity.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
