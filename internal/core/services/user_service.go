package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	accounts *AccountStore
	baseline *RateStore
}

func NewUserService(accounts *AccountStore, baseline *RateStore) portssvc.UserSvcFacade {
	return &userService{accounts: accounts, baseline: baseline}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return &account, nil
}

// CreateUser registers a new account. The personal table starts as a snapshot of
// the baseline, so later baseline edits on disk do not reach existing users.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.Account, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: username, password and confirmPassword are required", apperrors.ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	}

	if _, err := s.accounts.GetByUsername(username); err == nil {
		s.LogDebug(ctx, "Registration rejected, username taken", slog.String("username", username))
		return nil, fmt.Errorf("%w: username '%s' is taken", apperrors.ErrDuplicate, username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := domain.Account{
		ID:            uuid.NewString(),
		Username:      username,
		PasswordHash:  hash,
		PersonalRates: domain.OverriddenRates(s.baseline.Get()),
	}

	// Create re-checks uniqueness under the write lock.
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", account.ID), slog.String("username", username))
	return &account, nil
}

// AuthenticateUser returns ErrNotFound for an unknown username and ErrUnauthorized
// for a wrong password.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accounts.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.BurnPasswordCheck(password)
			s.LogDebug(ctx, "Login for unknown user", slog.String("username", username))
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		s.LogDebug(ctx, "Login with wrong password", slog.String("user_id", account.ID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return &account, nil
}
