package service

import (
	"context"
	"fmt"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/models"
)

// sessionService is the concrete implementation of SessionService.
// It mediates between the web session adapter (which only ever sees session
// identifiers) and the session/user repositories.
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// repositories.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// CreateSession records a session for user with whatever client metadata the
// adapter managed to capture. Capture is best effort; "unknown" values are
// stored as-is.
func (s *sessionService) CreateSession(ctx context.Context, user models.User, info models.RequestInfo) (models.Session, error) {
	session := models.Session{
		UserID:    user.ID,
		IPAddress: &info.IPAddress,
		UserAgent: &info.UserAgent,
		Location:  &info.Location,
	}

	createdSession, err := s.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return createdSession, nil
}

// GetUserSessions lists the user's sessions ordered most-recently-used first.
func (s *sessionService) GetUserSessions(ctx context.Context, user models.User) ([]models.Session, error) {
	sessions, err := s.sessionRepository.GetUserSessions(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("session listing ended with error: %w", err)
	}

	return sessions, nil
}

// RevokeSession deletes targetSessionID on behalf of user.
//
// Ownership is confirmed before any mutation: a session that is absent or
// belongs to another user yields store.ErrSessionNotFound, revealing nothing
// about other users' sessions. The current session is protected:
// ErrCannotRevokeCurrentSession directs the caller to logout instead.
func (s *sessionService) RevokeSession(ctx context.Context, user models.User, currentSessionID, targetSessionID string) error {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepository.GetSessionByID(ctx, targetSessionID)
	if err != nil {
		log.Err(err).Str("session_id", targetSessionID).Msg("session lookup failed")
		return fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != user.ID {
		log.Error().Str("session_id", targetSessionID).Str("user_id", user.ID).Msg("session belongs to a different user")
		return store.ErrSessionNotFound
	}

	if targetSessionID == currentSessionID {
		return ErrCannotRevokeCurrentSession
	}

	if err := s.sessionRepository.DeleteSession(ctx, session.ID); err != nil {
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// DeleteSession removes a session unconditionally. Logout uses this path;
// it is idempotent because deleting an absent row is not an error.
func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// GetUserBySessionID resolves a session identifier to its live owning user.
//
// The lookup is always fresh; nothing about the user is ever cached in the
// cookie, so out-of-band revocation takes effect on the very next request.
func (s *sessionService) GetUserBySessionID(ctx context.Context, sessionID string) (models.User, error) {
	session, err := s.sessionRepository.GetSessionByID(ctx, sessionID)
	if err != nil {
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("session owner lookup failed: %w", err)
	}

	return user, nil
}

// TouchSession refreshes the session's last-used timestamp.
func (s *sessionService) TouchSession(ctx context.Context, sessionID string) error {
	return s.sessionRepository.TouchSession(ctx, sessionID)
}
