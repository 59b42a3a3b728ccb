package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// AuthService handles registration, login and account management.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Register creates a customer account and issues a token. Staff accounts are
// created through admin user management, never by self-registration.
func (s *AuthService) Register(ctx context.Context, name, email, password, company string) (*domain.User, string, time.Time, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name, email, password required", nil)
	}
	if len(password) < 8 {
		return nil, "", time.Time{}, apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		Company:      strings.TrimSpace(company),
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, expiresAt, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !user.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("account deactivated")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, expiresAt, nil
}

// ProfileUpdateInput is a partial self-service profile update.
type ProfileUpdateInput struct {
	Name     *string
	Company  *string
	Password *string
}

// UpdateProfile lets the caller change their own name, company and password.
func (s *AuthService) UpdateProfile(ctx context.Context, actor *domain.User, input ProfileUpdateInput) (*domain.User, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty", nil)
		}
		user.Name = name
	}
	if input.Company != nil {
		user.Company = strings.TrimSpace(*input.Company)
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, apperrors.NewValidationError("password must be at least 8 characters", nil)
		}
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UserCreateInput describes admin-driven account creation.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Company  string
}

// CreateUser lets an admin create an account with any role.
func (s *AuthService) CreateUser(ctx context.Context, actor *domain.User, input UserCreateInput) (*domain.User, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("admin role required")
	}
	if !domain.KnownRole(input.Role) {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": input.Role})
	}
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("name, email, password required", nil)
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		Company:      strings.TrimSpace(input.Company),
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UserUpdateInput describes admin-driven account changes.
type UserUpdateInput struct {
	Name    *string
	Role    *domain.Role
	Company *string
	Active  *bool
}

// UpdateUser lets an admin change role, activity and profile fields.
func (s *AuthService) UpdateUser(ctx context.Context, actor *domain.User, userID string, input UserUpdateInput) (*domain.User, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("admin role required")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty", nil)
		}
		user.Name = name
	}
	if input.Role != nil {
		if !domain.KnownRole(*input.Role) {
			return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": *input.Role})
		}
		user.Role = *input.Role
	}
	if input.Company != nil {
		user.Company = strings.TrimSpace(*input.Company)
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ListUsers returns accounts for admin user management.
func (s *AuthService) ListUsers(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.User, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("admin role required")
	}
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}
