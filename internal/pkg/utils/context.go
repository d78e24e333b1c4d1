package utils

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetActor(ctx context.Context) (*models.Actor, bool) {
	actor, ok := ctx.Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	return actor, ok && actor != nil
}

func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ACTOR_KEY, actor)
}
