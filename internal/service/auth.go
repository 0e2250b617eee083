// Package service implements the application's business operations on top of the store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bookhavenapp/bookhaven-server/internal/auth"
	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	domainerrors "github.com/bookhavenapp/bookhaven-server/internal/errors"
	"github.com/bookhavenapp/bookhaven-server/internal/id"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
	"github.com/bookhavenapp/bookhaven-server/internal/validation"
)

// validate is a shared validator instance for request validation.
var validate = validation.New()

// AuthService handles registration, login, and session verification.
type AuthService struct {
	store        *store.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(st *store.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        st,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,max=1024"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	DisplayName     string `json:"display_name" validate:"required"`
}

// AuthResponse contains the session token and user data.
type AuthResponse struct {
	User      domain.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Register creates a new reader account and logs it in.
// Password rules are checked in a fixed order so the client always sees
// the first failing rule: length, lowercase, uppercase, digit.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	if msg := validation.PasswordError(req.Password); msg != "" {
		return nil, domainerrors.Validation(msg)
	}
	if !validation.PasswordsMatch(req.Password, req.ConfirmPassword) {
		return nil, domainerrors.Validation("passwords do not match")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:               userID,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		DisplayName:      req.DisplayName,
		Role:             domain.RoleUser,
		VerificationCode: uuid.NewString(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, domainerrors.AlreadyExists("email already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.logger != nil {
		// The code is logged rather than mailed; there is no SMTP delivery.
		s.logger.Info("User registered",
			"user_id", userID,
			"email", user.Email,
			"verification_code", user.VerificationCode,
		)
	}

	return s.createSession(ctx, user)
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a user and opens a new session.
// Unknown emails and wrong passwords produce the same error, so the
// response doesn't reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.InvalidCredentials("invalid email or password")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, domainerrors.InvalidCredentials("invalid email or password")
	}

	if s.logger != nil {
		s.logger.Info("User logged in", "user_id", user.ID)
	}

	return s.createSession(ctx, user)
}

// createSession issues a token and persists the session record.
func (s *AuthService) createSession(ctx context.Context, user *domain.User) (*AuthResponse, error) {
	token, expiresAt, err := s.tokenService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	sessionID, err := id.Generate("session")
	if err != nil {
		return nil, fmt.Errorf("generate session ID: %w", err)
	}

	session := &domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: auth.HashToken(token),
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &AuthResponse{
		User:      user.Redacted(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout ends the session behind the given token.
// Idempotent: logging out an unknown or already-ended session succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	session, err := s.store.GetSessionByToken(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, store.ErrSessionExpired) {
			return nil
		}
		return fmt.Errorf("get session: %w", err)
	}

	if err := s.store.DeleteSession(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User logged out", "user_id", session.UserID)
	}

	return nil
}

// VerifySession checks a bearer token and returns the logged-in user.
// The token must decrypt AND its session must still exist in the store,
// so logout takes effect before the token's own expiry.
func (s *AuthService) VerifySession(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenService.VerifySessionToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired token")
	}

	_, err = s.store.GetSessionByToken(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrSessionExpired) {
			return nil, domainerrors.TokenExpired("session expired")
		}
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, domainerrors.Unauthorized("session not found")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	user, err := s.store.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.Unauthorized("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// UpdateProfileRequest carries a partial profile update. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateProfile merges the given fields into the user's profile.
// Changing the email resets verification.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if req.DisplayName != nil {
		if !validation.IsNotEmpty(*req.DisplayName) {
			return nil, domainerrors.Validation("display name cannot be empty")
		}
		user.DisplayName = *req.DisplayName
	}
	emailChanged := req.Email != nil && *req.Email != user.Email
	if emailChanged {
		user.Email = *req.Email
		user.EmailVerified = false
		user.VerificationCode = uuid.NewString()
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, domainerrors.AlreadyExists("email already in use")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	if emailChanged && s.logger != nil {
		s.logger.Info("Email changed, verification required",
			"user_id", user.ID,
			"email", user.Email,
			"verification_code", user.VerificationCode,
		)
	}

	return user, nil
}

// VerifyEmail marks the user's email verified if the code matches.
func (s *AuthService) VerifyEmail(ctx context.Context, userID, code string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.EmailVerified {
		return user, nil
	}
	if code == "" || user.VerificationCode != code {
		return nil, domainerrors.Validation("invalid verification code")
	}

	user.EmailVerified = true
	user.VerificationCode = ""

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Email verified", "user_id", user.ID)
	}

	return user, nil
}
