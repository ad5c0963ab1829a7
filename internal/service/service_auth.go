package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, and profile updates
// using a UserRepository for persistence and bcrypt for password hashing.
// Password-change requests cascade into the SessionRepository: every session
// of the user is deleted so stale cookies die immediately.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	logger            *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

// SignUp creates a new user account.
//
// The password is hashed before anything is persisted. Duplicate detection
// is left entirely to the database unique constraint: the repository maps a
// unique violation to store.ErrEmailAlreadyRegistered, so two concurrent
// signups with the same email cannot both succeed.
func (a *authService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("signup password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a failed password verification are deliberately
// indistinguishable: both return ErrIncorrectEmailOrPassword so the response
// never leaks which part of the combination was wrong.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		// only a genuinely absent user collapses into the sentinel; an
		// infrastructure failure must not masquerade as bad credentials
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrIncorrectEmailOrPassword
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !VerifyPassword(password, foundUser.Password) {
		log.Error().Str("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrIncorrectEmailOrPassword
	}

	return foundUser, nil
}

// UpdateProfile applies a profile patch to the user identified by userID.
//
// The stored hash is re-fetched rather than trusted from the caller, and the
// current password must verify against it (ErrWrongCurrentPassword
// otherwise). Name and email are applied unconditionally. When the patch
// carries a new password it is hashed and every session of the user is
// deleted before the update; the password-change cascade and the UPDATE are
// two statements, not one transaction, matching the per-statement guarantees
// the rest of the app relies on.
func (a *authService) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if patch.Name == "" || patch.Email == "" || patch.CurrentPassword == "" {
		log.Error().Str("id", userID).Msg("invalid profile data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	storedUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !VerifyPassword(patch.CurrentPassword, storedUser.Password) {
		log.Error().Str("id", userID).Msg("wrong current password")
		return models.User{}, ErrWrongCurrentPassword
	}

	update := models.UserUpdate{
		ID:    userID,
		Name:  patch.Name,
		Email: patch.Email,
	}

	if patch.NewPassword != "" {
		hash, err := HashPassword(patch.NewPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("profile password hashing failed: %w", err)
		}
		update.Password = &hash

		if err := a.sessionRepository.DeleteAllSessions(ctx, userID); err != nil {
			log.Err(err).Str("id", userID).Msg("session invalidation failed")
			return models.User{}, fmt.Errorf("session invalidation failed: %w", err)
		}
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}
