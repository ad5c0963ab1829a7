package store

import (
	"github.com/osavchuk/todostack/internal/logger"
)

// Storages bundles every repository behind one handle so callers receive a
// single injected dependency instead of process-wide singletons.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	TodoRepository    TodoRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		TodoRepository:    NewTodoRepository(db, logger),
	}
}
