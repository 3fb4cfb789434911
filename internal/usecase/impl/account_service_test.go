package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mylot/config"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/repository"
	mockRepo "mylot/internal/mocks/repository"
	mockSvc "mylot/internal/mocks/service"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	lotteryRepo *mockRepo.MockLotteryRepository
	recRepo     *mockRepo.MockRecommendationRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	mailer      *mockSvc.MockMailer
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://localhost:8080"
	cfg.Auth = &config.AuthConfig{ResetTTL: time.Hour}

	fixtures := accountServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		sessionRepo: mockRepo.NewMockSessionRepository(t),
		lotteryRepo: mockRepo.NewMockLotteryRepository(t),
		recRepo:     mockRepo.NewMockRecommendationRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokens:      mockSvc.NewMockTokenService(t),
		mailer:      mockSvc.NewMockMailer(t),
	}

	fixtures.service = NewAccountService(AccountServiceParams{
		TxManager:   fixtures.txManager,
		UserRepo:    fixtures.userRepo,
		SessionRepo: fixtures.sessionRepo,
		LotteryRepo: fixtures.lotteryRepo,
		RecRepo:     fixtures.recRepo,
		Hasher:      fixtures.hasher,
		Tokens:      fixtures.tokens,
		Mailer:      fixtures.mailer,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

// expectSession wires the token and session mocks for one successful login.
func (f accountServiceFixtures) expectSession(token string) {
	f.sessionRepo.On("DeleteExpiredSessions", mock.Anything).Return(nil)
	f.tokens.On("GenerateSessionToken", mock.AnythingOfType("uuid.UUID")).Return(token, nil)
	f.tokens.On("HashToken", token).Return("hash-of-" + token)
	f.tokens.On("SessionDuration").Return(time.Hour)
	f.sessionRepo.On("CreateSession", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)
}

func TestAccountService_Signup_WithActivation(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "hunter22").Return("hashed-password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AuthRepo").Return(authRepo)

			userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.User).ID = uuid.New()
				}).
				Return(nil)
			authRepo.On("CreateAuthentication", ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(args mock.Arguments) {
					auth := args.Get(1).(*entity.Authentication)
					assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
					assert.Equal(t, "new@example.com", auth.ProviderUserID)
					assert.Equal(t, "hashed-password", auth.PasswordHash)
				}).
				Return(nil)

			return fn(factory)
		})

	fx.mailer.On("Send", ctx, "new@example.com", mock.Anything, mock.Anything).Return(nil)

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		Email:             "new@example.com",
		Password:          "hunter22",
		Profile:           entity.Profile{Name: "New User"},
		RequireActivation: true,
	})

	require.NoError(t, err)
	assert.False(t, output.User.Active)
	assert.NotEmpty(t, output.User.ActiveKey)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	// No session until the account is activated.
	assert.Empty(t, output.Token)
}

func TestAccountService_Signup_ImmediateLogin(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "hunter22").Return("hashed-password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AuthRepo").Return(authRepo)

			userRepo.On("FindByEmail", ctx, "web@example.com").Return(nil, repository.ErrUserNotFound)
			userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			authRepo.On("CreateAuthentication", ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)

			return fn(factory)
		})

	fx.expectSession("session-token")

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		Email:    "web@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.True(t, output.User.Active)
	assert.Empty(t, output.User.ActiveKey)
	assert.Equal(t, "session-token", output.Token)
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "hunter22").Return("hashed-password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AuthRepo").Return(authRepo)

			userRepo.On("FindByEmail", ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

			return fn(factory)
		})

	_, err := fx.service.Signup(ctx, usecase.SignupInput{
		Email:    "taken@example.com",
		Password: "hunter22",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Authentications: []entity.Authentication{
			{Provider: entity.ProviderTypeEmail, ProviderUserID: "user@example.com", PasswordHash: "stored-hash"},
		},
	}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "hunter22", "stored-hash").Return(true)
	fx.expectSession("session-token")

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Authentications: []entity.Authentication{
			{Provider: entity.ProviderTypeEmail, PasswordHash: "stored-hash"},
		},
	}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_SweepFailureDoesNotBlock(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Authentications: []entity.Authentication{
			{Provider: entity.ProviderTypeEmail, ProviderUserID: "user@example.com", PasswordHash: "stored-hash"},
		},
	}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "hunter22", "stored-hash").Return(true)

	// The expired-session sweep is best-effort; login proceeds on failure.
	fx.sessionRepo.On("DeleteExpiredSessions", mock.Anything).Return(errors.New("db busy"))
	fx.tokens.On("GenerateSessionToken", mock.AnythingOfType("uuid.UUID")).Return("session-token", nil)
	fx.tokens.On("HashToken", "session-token").Return("hash-of-session-token")
	fx.tokens.On("SessionDuration").Return(time.Hour)
	fx.sessionRepo.On("CreateSession", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
}

func TestAccountService_Logout_UnknownSessionIsNotAnError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.tokens.On("ValidateSessionToken", "stale-token").Return(uuid.Nil, errors.New("expired"))
	fx.tokens.On("HashToken", "stale-token").Return("stale-hash")
	fx.sessionRepo.On("DeleteSessionByHash", ctx, "stale-hash").Return(repository.ErrSessionNotFound)

	err := fx.service.Logout(ctx, "stale-token")

	assert.NoError(t, err)
}

func TestAccountService_Activate_AlreadyActive(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(userRepo)
			userRepo.On("FindByActiveKey", ctx, "the-key").Return(&entity.User{ID: uuid.New(), Active: true}, nil)

			return fn(factory)
		})

	err := fx.service.Activate(ctx, "the-key")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyActive))
}

func TestAccountService_Activate_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.On("UserRepo").Return(userRepo)
			userRepo.On("FindByActiveKey", ctx, "the-key").
				Return(&entity.User{ID: uuid.New(), Active: false, ActiveKey: "the-key"}, nil)
			userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					user := args.Get(1).(*entity.User)
					assert.True(t, user.Active)
					assert.Empty(t, user.ActiveKey)
				}).
				Return(nil)

			return fn(factory)
		})

	err := fx.service.Activate(ctx, "the-key")

	assert.NoError(t, err)
}

func TestAccountService_CheckResetToken_Expired(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expired := time.Now().Add(-time.Minute)
	fx.userRepo.On("FindByResetToken", ctx, "old-token").Return(&entity.User{
		ID:                   uuid.New(),
		PasswordResetToken:   "old-token",
		PasswordResetExpires: &expired,
	}, nil)

	err := fx.service.CheckResetToken(ctx, "old-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAccountService_ResetPassword_ConsumesToken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expires := time.Now().Add(30 * time.Minute)
	user := &entity.User{
		ID:                   uuid.New(),
		Email:                "user@example.com",
		PasswordResetToken:   "reset-token",
		PasswordResetExpires: &expires,
		Authentications: []entity.Authentication{
			{Provider: entity.ProviderTypeEmail, ProviderUserID: "user@example.com", PasswordHash: "old-hash"},
		},
	}

	fx.hasher.On("Hash", "new-password").Return("new-hash", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AuthRepo").Return(authRepo)

			userRepo.On("FindByResetToken", ctx, "reset-token").Return(user, nil)
			authRepo.On("UpdateAuthentication", ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(args mock.Arguments) {
					assert.Equal(t, "new-hash", args.Get(1).(*entity.Authentication).PasswordHash)
				}).
				Return(nil)
			userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					updated := args.Get(1).(*entity.User)
					assert.Empty(t, updated.PasswordResetToken)
					assert.Nil(t, updated.PasswordResetExpires)
				}).
				Return(nil)

			return fn(factory)
		})

	fx.mailer.On("Send", ctx, "user@example.com", mock.Anything, mock.Anything).Return(nil)
	fx.expectSession("fresh-token")

	output, err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Token:    "reset-token",
		Password: "new-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
}

func TestAccountService_UnlinkProvider_LastCredential(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.On("AuthRepo").Return(authRepo)
			authRepo.On("CountByUserID", ctx, userID).Return(1, nil)

			return fn(factory)
		})

	err := fx.service.UnlinkProvider(ctx, userID, entity.ProviderTypeFacebook)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLastCredential))
}

func TestAccountService_DeleteAccount_RevokesSessions(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.On("DeleteSessionsByUserID", ctx, userID).Return(nil)
	fx.userRepo.On("Delete", ctx, userID).Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)

	assert.NoError(t, err)
	fx.sessionRepo.AssertCalled(t, "DeleteSessionsByUserID", ctx, userID)
}

func TestAccountService_GetProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "user@example.com"}
	lotteries := []*entity.Lottery{{ID: uuid.New(), UserID: userID}}
	recs := []*entity.Recommendation{{ID: uuid.New(), UserID: userID}}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.lotteryRepo.On("FindByUser", ctx, userID).Return(lotteries, nil)
	fx.recRepo.On("FindByUser", ctx, userID).Return(recs, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, lotteries, output.RealAwards)
	assert.Equal(t, recs, output.TryAwards)
}
