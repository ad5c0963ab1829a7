package http

import (
	"github.com/osavchuk/todostack/internal/adapter"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/internal/websession"
)

type Handler struct {
	services    *service.Services
	websession  *websession.Manager
	requestInfo adapter.RequestInfoProvider

	logger *logger.Logger
}

func NewHandler(services *service.Services, websession *websession.Manager, requestInfo adapter.RequestInfoProvider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		websession:  websession,
		requestInfo: requestInfo,
		logger:      logger,
	}
}
