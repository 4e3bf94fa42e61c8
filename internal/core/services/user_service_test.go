package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	accounts *services.AccountStore
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.accounts = services.NewAccountStore(suite.mockRepo)

	hash, err := utils.HashPassword("secret1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.accounts.Init([]domain.Account{
		{ID: "existing-id", Username: "existing", PasswordHash: hash, PersonalRates: domain.InheritedRates()},
	}))

	suite.service = services.NewUserService(suite.accounts, newBaselineStore(suite.T(), testBaseline()))
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "newbie", Password: "password123", ConfirmPassword: "password123"}

	suite.mockRepo.On("SaveAll", ctx, mock.MatchedBy(func(accounts []domain.Account) bool {
		return len(accounts) == 2 && accounts[1].Username == "newbie" && accounts[1].PasswordHash != "password123"
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.ID)
	suite.Equal("newbie", created.Username)
	suite.True(utils.CheckPasswordHash("password123", created.PasswordHash))

	table, ok := created.PersonalRates.Table()
	suite.True(ok, "new accounts start with their own copy of the baseline")
	suite.True(table.Equal(testBaseline()))

	stored, err := suite.accounts.GetByUsername("newbie")
	suite.Require().NoError(err)
	suite.Equal(created.ID, stored.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_ValidationErrors() {
	tests := []struct {
		name string
		req  dto.CreateUserRequest
	}{
		{"missing username", dto.CreateUserRequest{Username: "  ", Password: "abcdef", ConfirmPassword: "abcdef"}},
		{"missing confirmation", dto.CreateUserRequest{Username: "someone", Password: "abcdef"}},
		{"passwords differ", dto.CreateUserRequest{Username: "someone", Password: "abcdef", ConfirmPassword: "abcdeg"}},
		{"password too long to hash", dto.CreateUserRequest{Username: "someone", Password: strings.Repeat("a", 73), ConfirmPassword: strings.Repeat("a", 73)}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			created, err := suite.service.CreateUser(context.Background(), tt.req)
			suite.Nil(created)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAll", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	created, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "existing", Password: "abcdef", ConfirmPassword: "abcdef",
	})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAll", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAll", ctx, mock.Anything).Return(apperrors.ErrPersistenceWrite).Once()

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "unlucky", Password: "abcdef", ConfirmPassword: "abcdef",
	})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrPersistenceWrite)
	_, err = suite.accounts.GetByUsername("unlucky")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID() {
	user, err := suite.service.GetUserByID(context.Background(), "existing-id")
	suite.Require().NoError(err)
	suite.Equal("existing", user.Username)

	user, err = suite.service.GetUserByID(context.Background(), "missing")
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()

	user, err := suite.service.AuthenticateUser(ctx, "existing", "secret1")
	suite.Require().NoError(err)
	suite.Equal("existing-id", user.ID)

	_, err = suite.service.AuthenticateUser(ctx, "existing", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "nobody", "secret1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test-issuer"}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.Account{ID: "user-1"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}
