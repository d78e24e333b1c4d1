package session

import (
	"context"
	"fmt"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionRepository struct {
	RedisRepository contracts.RedisRepository
}

// NewSessionRepository keeps sessions in redis; a session lives until its
// ExpiresAt and disappears with the key.
func NewSessionRepository(redisRepository contracts.RedisRepository) contracts.SessionRepository {
	return &sessionRepository{
		RedisRepository: redisRepository,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrSessionInvalid(fmt.Errorf("session %s already expired", session.SessionID))
	}
	return r.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (r *sessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := r.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}
