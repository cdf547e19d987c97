package service

import (
	"github.com/shubhamkr/streamtube-backend/internal/adapter"
	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
}

func NewServices(storages *store.Storages, uploader adapter.FileUploader, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, uploader, cfg.App, logger),
		ProfileService: NewProfileService(storages.UserRepository, uploader, logger),
	}
}
