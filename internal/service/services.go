package service

import (
	"github.com/devconnector/devconnector/internal/config"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, storages.UserRepository, logger),
	}
}
