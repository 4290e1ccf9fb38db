package middlewares

import (
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/services/shared/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService session.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService session.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
