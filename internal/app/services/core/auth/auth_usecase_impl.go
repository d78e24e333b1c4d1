package auth

import (
	"context"
	"fmt"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	SessionRepository contracts.SessionRepository
	PermissionChecker contracts.PermissionChecker
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionRepository contracts.SessionRepository,
	permissionChecker contracts.PermissionChecker,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			SessionRepository: sessionRepository,
			PermissionChecker: permissionChecker,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.createUser(ctx, request.Name, request.Email, request.Password, constvars.RolePatient)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile := user.ConvertIntoResponse()
	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, user.ID),
	)
	return &profile, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Warn("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	expiresAt := time.Now().Add(time.Duration(uc.InternalConfig.Session.ExpiredTimeInHours) * time.Hour)
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}
	err = uc.SessionRepository.Create(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expiresAt)
	if err != nil {
		uc.Log.Error("authUsecase.Login error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, user.ID),
	)
	return &responses.LoginUser{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		User:        user.ConvertIntoResponse(),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, actor *models.Actor) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	if actor == nil {
		return exceptions.ErrMissingActor(nil)
	}

	err := uc.SessionRepository.Delete(ctx, actor.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, actor.UserID),
	)
	return nil
}

// ResolveActor reloads the user on every call so a patient link made after
// login is visible immediately.
func (uc *authUsecase) ResolveActor(ctx context.Context, token string) (*models.Actor, error) {
	requestID := utils.GetRequestID(ctx)

	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.ResolveActor error fetching session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("authUsecase.ResolveActor error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("user %s no longer exists", session.UserID))
	}

	return &models.Actor{
		UserID:    user.ID,
		SessionID: session.SessionID,
		Role:      user.Role,
		Name:      user.Name,
		Email:     user.Email,
		PatientID: user.PatientID,
	}, nil
}

func (uc *authUsecase) Me(ctx context.Context, actor *models.Actor) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotFound(nil, "user")
	}

	profile := user.ConvertIntoResponse()
	uc.Log.Info("authUsecase.Me succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &profile, nil
}

func (uc *authUsecase) CreateStaff(ctx context.Context, actor *models.Actor, request *requests.CreateStaff) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.CreateStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceUsers, constvars.ActionCreate)
	if err != nil {
		return nil, err
	}

	user, err := uc.createUser(ctx, request.Name, request.Email, request.Password, request.Role)
	if err != nil {
		uc.Log.Error("authUsecase.CreateStaff error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile := user.ConvertIntoResponse()
	uc.Log.Info("authUsecase.CreateStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorRoleKey, user.Role),
	)
	return &profile, nil
}

func (uc *authUsecase) createUser(ctx context.Context, name, email, password, role string) (*models.User, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}
	user.ID, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
