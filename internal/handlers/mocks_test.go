package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.Account, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error) {
	args := m.Called(ctx, account)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) effective(args mock.Arguments) (*domain.EffectiveRates, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EffectiveRates), args.Error(1)
}

func (m *MockRateService) GetEffectiveRates(ctx context.Context, accountID string) (*domain.EffectiveRates, error) {
	return m.effective(m.Called(ctx, accountID))
}

func (m *MockRateService) SetRate(ctx context.Context, accountID string, req dto.UpdateRateRequest) (*domain.EffectiveRates, error) {
	return m.effective(m.Called(ctx, accountID, req))
}

func (m *MockRateService) AddRate(ctx context.Context, accountID string, req dto.AddRateRequest) (*domain.EffectiveRates, error) {
	return m.effective(m.Called(ctx, accountID, req))
}

func (m *MockRateService) DeleteRate(ctx context.Context, accountID string, req dto.DeleteRateRequest) (*domain.EffectiveRates, error) {
	return m.effective(m.Called(ctx, accountID, req))
}

func (m *MockRateService) ResetRates(ctx context.Context, accountID string) (*domain.EffectiveRates, error) {
	return m.effective(m.Called(ctx, accountID))
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, accountID string, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

var _ portssvc.ConversionSvc = (*MockConversionService)(nil)

// --- Mock BaselineStatus ---
type MockBaselineStatus struct {
	mock.Mock
}

func (m *MockBaselineStatus) IsDegraded() bool {
	return m.Called().Bool(0)
}

var _ portssvc.BaselineStatusSvc = (*MockBaselineStatus)(nil)
