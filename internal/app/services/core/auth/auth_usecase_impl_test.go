package auth

import (
	"context"
	"net/http"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthUsecase(t *testing.T, userRepo *mocks.UserRepository, sessionRepo *mocks.SessionRepository) *authUsecase {
	checker, err := access.NewPermissionChecker(zap.NewNop())
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.Session.ExpiredTimeInHours = 1

	return &authUsecase{
		UserRepository:    userRepo,
		SessionRepository: sessionRepo,
		PermissionChecker: checker,
		InternalConfig:    internalConfig,
		Log:               zap.NewNop(),
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Patient Account", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByEmail", ctx, "sara@example.com").Return(nil, nil)
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RolePatient && utils.CheckPasswordHash("Secret#123", user.Password)
		})).Return("user-1", nil)

		profile, err := newTestAuthUsecase(t, userRepo, new(mocks.SessionRepository)).Register(ctx, &requests.RegisterUser{
			Name: "Sara", Email: "sara@example.com", Password: "Secret#123",
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, constvars.RolePatient, profile.Role)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByEmail", ctx, "sara@example.com").Return(&models.User{ID: "user-1"}, nil)

		_, err := newTestAuthUsecase(t, userRepo, new(mocks.SessionRepository)).Register(ctx, &requests.RegisterUser{
			Name: "Sara", Email: "sara@example.com", Password: "Secret#123",
		})

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_LoginAndResolveActor(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("Secret#123")
	require.NoError(t, err)
	user := &models.User{ID: "user-1", Name: "Dr. Rahman", Email: "rahman@example.com", Password: hashed, Role: constvars.RoleDoctor}

	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByEmail", ctx, "rahman@example.com").Return(user, nil)
	userRepo.On("FindByID", ctx, "user-1").Return(user, nil)

	var stored *models.Session
	sessionRepo := new(mocks.SessionRepository)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*models.Session")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*models.Session)
	}).Return(nil)

	usecase := newTestAuthUsecase(t, userRepo, sessionRepo)
	login, err := usecase.Login(ctx, &requests.LoginUser{Email: "rahman@example.com", Password: "Secret#123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), time.Unix(login.ExpiresAt, 0), time.Minute)

	sessionRepo.On("Find", ctx, stored.SessionID).Return(stored, nil)
	actor, err := usecase.ResolveActor(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.UserID)
	assert.Equal(t, constvars.RoleDoctor, actor.Role)
	assert.Equal(t, stored.SessionID, actor.SessionID)

	_, err = usecase.ResolveActor(ctx, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("Secret#123")
	require.NoError(t, err)

	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByEmail", ctx, "rahman@example.com").Return(&models.User{ID: "user-1", Password: hashed}, nil)
	sessionRepo := new(mocks.SessionRepository)

	_, err = newTestAuthUsecase(t, userRepo, sessionRepo).Login(ctx, &requests.LoginUser{Email: "rahman@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_ResolveActor_RevokedSession(t *testing.T) {
	ctx := context.Background()
	token, err := utils.GenerateSessionJWT("session-1", "test-secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionRepo := new(mocks.SessionRepository)
	sessionRepo.On("Find", ctx, "session-1").Return(nil, nil)

	_, err = newTestAuthUsecase(t, new(mocks.UserRepository), sessionRepo).ResolveActor(ctx, token)

	assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
}

func TestAuthUsecase_CreateStaff(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateStaff{Name: "Dr. Lina", Email: "lina@example.com", Password: "Secret#123", Role: constvars.RoleDoctor}

	t.Run("Admin", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByEmail", ctx, "lina@example.com").Return(nil, nil)
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RoleDoctor
		})).Return("user-9", nil)

		admin := &models.Actor{UserID: "admin-1", Role: constvars.RoleAdmin}
		profile, err := newTestAuthUsecase(t, userRepo, new(mocks.SessionRepository)).CreateStaff(ctx, admin, request)

		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, profile.Role)
	})

	t.Run("Doctor Is Forbidden", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		doctor := &models.Actor{UserID: "doctor-1", Role: constvars.RoleDoctor}

		_, err := newTestAuthUsecase(t, userRepo, new(mocks.SessionRepository)).CreateStaff(ctx, doctor, request)

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
		userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}
