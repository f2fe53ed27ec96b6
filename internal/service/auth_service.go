package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/auth"
	"restaurant-hub/internal/model"
	"restaurant-hub/internal/repository"
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		validate: validator.New(),
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies credentials against the stored password hash. The
// same error is returned for an unknown email and a wrong password.
func (s *authService) Login(ctx context.Context, creds *model.Credentials) (*model.User, error) {
	if err := s.validate.Struct(creds); err != nil {
		s.logger.Warn().Err(err).Msg("invalid login input")
		return nil, model.NewDomainError(model.ErrCodeValidation, "Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, creds.Password) {
		s.logger.Warn().Str("email", creds.Email).Msg("login rejected")
		return nil, model.ErrInvalidCredential
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user logged in")
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account when no user with
// the given email exists. Called once at startup.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.Info().Msg("admin bootstrap skipped, no credentials configured")
		return nil
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Int("user_id", existing.ID).Msg("admin account already exists")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("email", email).Msg("admin account created")
	return nil
}
