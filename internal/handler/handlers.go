package handler

import (
	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/handler/http"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, serverCfg config.Server, uploadsCfg config.Uploads, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if serverCfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, serverCfg, uploadsCfg, logger),
	}, nil
}
