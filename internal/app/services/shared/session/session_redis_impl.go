package session

import (
	"context"
	"time"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type sessionRedisService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionService(client *redis.Client, expiredTimeInHours int) SessionService {
	return &sessionRedisService{
		client: client,
		ttl:    time.Duration(expiredTimeInHours) * time.Hour,
	}
}

func (svc *sessionRedisService) CreateSession(ctx context.Context, sessionID string, session *models.Session) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = svc.client.Set(ctx, constvars.SessionKeyPrefix+sessionID, jsonValue, svc.ttl).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (svc *sessionRedisService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := svc.client.Get(ctx, constvars.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, exceptions.ErrSessionInvalid(err)
	} else if err != nil {
		return nil, exceptions.ErrRedisGetNoData(err, sessionID)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionRedisService) DeleteSession(ctx context.Context, sessionID string) error {
	err := svc.client.Del(ctx, constvars.SessionKeyPrefix+sessionID).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
