package http

import (
	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/service"
)

// Handler bundles the services consumed by the HTTP route handlers.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
