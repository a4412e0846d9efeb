package http

import (
	"github.com/devconnector/devconnector/internal/adapter"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/service"
	"github.com/devconnector/devconnector/internal/validators"
)

type Handler struct {
	services  *service.Services
	github    adapter.GithubAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, github adapter.GithubAdapter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		github:    github,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
