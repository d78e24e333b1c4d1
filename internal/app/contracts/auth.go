package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, actor *models.Actor) error
	ResolveActor(ctx context.Context, token string) (*models.Actor, error)
	Me(ctx context.Context, actor *models.Actor) (*responses.UserProfile, error)
	CreateStaff(ctx context.Context, actor *models.Actor, request *requests.CreateStaff) (*responses.UserProfile, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
