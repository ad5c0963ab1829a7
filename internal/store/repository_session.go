package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It owns the "sessions" table: creation with captured
// client metadata, ownership-ordered listing, touch-on-use, and deletion.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a session row and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt).
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.IPAddress, session.UserAgent, session.Location)

	if err := row.Scan(&session.ID, &session.UserID, &session.IPAddress, &session.UserAgent, &session.Location, &session.CreatedAt, &session.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// GetUserSessions returns every session owned by userID, most recently
// updated first. An empty result is not an error.
func (r *sessionRepository) GetUserSessions(ctx context.Context, userID string) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getUserSessions, userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetUserSessions").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*sessionRepository.GetUserSessions").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

// GetSessionByID returns the session row with the given id, or
// [ErrSessionNotFound].
func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var s models.Session
	row := r.db.QueryRowContext(ctx, getSessionByID, id)

	if err := row.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.GetSessionByID").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return s, nil
}

// DeleteSession removes the session row with the given id. Removing an
// already-absent row is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSession, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteAllSessions removes every session owned by userID. Used by the
// password-change cascade.
func (r *sessionRepository) DeleteAllSessions(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteAllSessions, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteAllSessions").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// TouchSession refreshes the session's updated_at. Touching a session that
// no longer exists is not an error: the cookie may outlive the row.
func (r *sessionRepository) TouchSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchSessionQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.TouchSession").Msg("error building touch query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.TouchSession").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions removes sessions whose updated_at is older than
// cutoff and reports how many rows were removed. Used by the sweeper worker.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredSessions, cutoff)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}
