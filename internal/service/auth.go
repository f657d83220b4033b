package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gymtrack/gymtrack-api/internal/crypto"
	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/repository"
)

// placeholderAPIKey is returned at login for accounts that never received a key.
const placeholderAPIKey = "demo_key"

// AuthService handles registration, login, password reset and API key checks.
type AuthService struct {
	users  UserStore
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
	}
}

// Register validates the request, hashes the password and creates the user.
// An API key is assigned at registration.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return model.RegisterResponse{}, &MissingFieldsError{Fields: missing}
	}
	if req.Password != req.ConfirmPassword {
		return model.RegisterResponse{}, ErrPasswordMismatch
	}

	birthdate, err := time.Parse(model.DateLayout, strings.TrimSpace(req.Birthdate))
	if err != nil {
		return model.RegisterResponse{}, ErrInvalidBirthdate
	}

	email := normalizeEmail(req.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return model.RegisterResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.RegisterResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	apiKey := crypto.NewAPIKey()
	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Birthdate:    birthdate,
		Gender:       req.Gender,
		PasswordHash: hash,
		Plan:         req.Plan,
		APIKey:       &apiKey,
	}
	if req.Plan == model.PlanPaid {
		user.PlanType = req.PlanType
		user.PaymentMethod = req.SelectedPaymentMethod
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, ErrEmailTaken
		}
		return model.RegisterResponse{}, fmt.Errorf("create user: %w", err)
	}

	return model.RegisterResponse{
		Message: fmt.Sprintf("Welcome %s, you've been registered successfully!", user.FirstName),
		User: model.RegisteredUser{
			FirstName: user.FirstName,
			Email:     user.Email,
		},
	}, nil
}

// Login verifies credentials and returns a fresh token, the stored API key and the profile.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return model.LoginResponse{}, ErrLoginFieldsRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.IssueToken()
	if err != nil {
		return model.LoginResponse{}, err
	}

	apiKey := placeholderAPIKey
	if user.APIKey != nil && *user.APIKey != "" {
		apiKey = *user.APIKey
	}

	return model.LoginResponse{
		Message: "Login successful",
		Token:   token,
		APIKey:  apiKey,
		User:    model.ProfileOf(user),
	}, nil
}

// ForgotPassword overwrites the password of the account registered under the email.
// Knowing the email is the only proof of identity.
func (s *AuthService) ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) error {
	email := normalizeEmail(req.Email)
	if email == "" || req.NewPassword == "" {
		return ErrResetFieldsRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Authorize resolves an API key to its owner.
func (s *AuthService) Authorize(ctx context.Context, apiKey string) (*model.User, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	user, err := s.users.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidAPIKey
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user along with their workouts and reminders.
func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}
