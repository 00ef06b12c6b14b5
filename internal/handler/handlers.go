package handler

import (
	"github.com/mkorolev/salary-service/internal/handler/http"
	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/service"
)

// Handlers bundles the transport handlers of the application. The service
// exposes a single HTTP surface.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
