package http

import (
	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/service"
)

type Handler struct {
	services *service.Services

	// tempDir is where multipart image uploads are spooled before being
	// pushed to the image host.
	tempDir string

	// corsOrigin is the single allowed CORS origin ("*" for any).
	corsOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, uploadsCfg config.Uploads, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		tempDir:    uploadsCfg.TempDir,
		corsOrigin: serverCfg.CORSOrigin,
		logger:     logger,
	}
}
