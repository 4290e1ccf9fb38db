package session

import (
	"context"

	"dentalclinic-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, sessionID string, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
