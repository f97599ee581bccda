package middlewares

import (
	"smileworks-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, accessLog *logrus.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AccessLog:      accessLog,
		InternalConfig: internalConfig,
	}
}
