package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

// expectTx makes the transaction manager run fn against a factory built by setup.
func (f userServiceFixtures) expectTx(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func TestUserService_Unconfigured_ReturnsIdentityUnavailable(t *testing.T) {
	svc := NewUserService(UserServiceParams{
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	assert.False(t, svc.Available())

	_, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "a@example.com", Password: "Password123"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityUnavailable)

	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "Password123"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityUnavailable)

	_, err = svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "token"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityUnavailable)

	err = svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "token"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityUnavailable)

	_, err = svc.Session(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrIdentityUnavailable)
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     "Test@Example.com",
		Password:  "Password123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AuthRepo().Return(authRepo)

		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
			Return(nil, repository.ErrAuthNotFound)
		userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "test@example.com" && u.Role == entity.RoleCustomer && u.FirstName == "Test"
			})).
			Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
			Return(nil)
		authRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
				return a.PasswordHash == "hashed_password" && a.ProviderUserID == "test@example.com" && a.UserID != uuid.Nil
			})).
			Return(nil)
	})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.FullName())
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "taken@example.com", Password: "Password123"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)
	input := &usecase.RegisterUserInput{Email: "a@example.com", Password: "weak"}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WithDetails("must be at least 8 characters long"))

	_, err := fx.service.RegisterUser(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleCustomer}

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "a@example.com").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("Password123", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "refresh-hash"
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "A@example.com", Password: "Password123"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "Password123"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "a@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleCustomer}

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "a@example.com").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("Password123", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access", "refresh", nil)
	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)
		refreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(2, nil)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "Password123"})

	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestUserService_Login_WithinSessionLimit(t *testing.T) {
	fx := createTestUserService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleCustomer}

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "a@example.com").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("Password123", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)
		refreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(1, nil)
		refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "Password123"})

	require.NoError(t, err)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	})
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("failed to parse token structure"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)
	})

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_DeletesEvenWithInvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("expired").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("expired").Return("expired-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "expired-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired"})

	require.NoError(t, err)
}

func TestUserService_Session_NotFound(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Session(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
