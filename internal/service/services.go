package service

import (
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/models"
)

// Services bundles every business-logic service behind one handle injected
// into the transport layer.
type Services struct {
	AuthService    AuthService
	SessionService SessionService
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, logger),
		SessionService: NewSessionService(storages.SessionRepository, storages.UserRepository, logger),
		TodoService:    NewTodoService(storages.TodoRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
