// Package websession implements the cookie side of authentication: it signs
// and verifies the client-held session reference and resolves it to a user
// on every request.
//
// The cookie payload is exactly one field, the session identifier, wrapped
// in an HMAC-SHA256 signed token. No user attribute ever enters the cookie;
// resolving the identifier to a user is always a fresh store lookup, which is
// what makes server-side revocation effective immediately.
package websession

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/models"
)

const (
	// CookieName is the name of the session cookie written to the browser.
	CookieName = "web_session"

	// tokenIssuer is the "iss" claim embedded in every signed cookie token.
	tokenIssuer = "todostack"
)

// Manager signs, verifies and clears the session cookie, and resolves its
// session identifier to a live user.
//
// A request is in exactly one of two states: Anonymous (no cookie, a garbled
// cookie, or a cookie whose session or owner no longer exists) or
// Authenticated (cookie resolves to a live session with a live owner).
// Stale cookies are never an error; they simply resolve to Anonymous.
type Manager struct {
	secret   []byte
	sessions service.SessionService
	logger   *logger.Logger
}

// NewManager constructs a Manager signing with secretKeyBase.
//
// An empty secret is refused: without it no session-dependent route can be
// served, so the caller must treat the error as fatal at startup.
func NewManager(secretKeyBase string, sessions service.SessionService, logger *logger.Logger) (*Manager, error) {
	if secretKeyBase == "" {
		return nil, ErrMissingSecret
	}

	return &Manager{
		secret:   []byte(secretKeyBase),
		sessions: sessions,
		logger:   logger,
	}, nil
}

// Resolve inspects the request cookie and returns the authenticated user and
// the current session identifier.
//
// ok is false for every Anonymous outcome: absent cookie, bad signature,
// session row deleted out-of-band, or owner deleted. None of these raise an
// error; the stale cookie is simply ignored until the client replaces it.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (user models.User, sessionID string, ok bool) {
	sessionID, found := m.sessionIDFromRequest(r)
	if !found {
		return models.User{}, "", false
	}

	user, err := m.sessions.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("cookie session did not resolve to a live user")
		return models.User{}, "", false
	}

	return user, sessionID, true
}

// Establish creates a session row for user and writes its signed identifier
// into a fresh cookie. Used on login, signup, and password-change rotation
// (where the previous sessions have already been deleted and the cookie is
// rewritten in place).
func (m *Manager) Establish(ctx context.Context, w http.ResponseWriter, user models.User, info models.RequestInfo) (models.Session, error) {
	session, err := m.sessions.CreateSession(ctx, user, info)
	if err != nil {
		return models.Session{}, err
	}

	token, err := m.encodeToken(session.ID)
	if err != nil {
		return models.Session{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return session, nil
}

// Clear expires the session cookie. The caller deletes the session row
// separately; clearing an already-absent cookie is harmless.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) sessionIDFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	sessionID, err := m.decodeToken(cookie.Value)
	if err != nil {
		return "", false
	}

	return sessionID, true
}

// encodeToken wraps sessionID in a signed HS256 token. There is no expiry
// claim on purpose: a session ends when its row is deleted, not when a
// client-held timestamp runs out.
func (m *Manager) encodeToken(sessionID string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Issuer:  tokenIssuer,
		Subject: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// decodeToken verifies the signature and issuer and extracts the session
// identifier from the subject claim.
func (m *Manager) decodeToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", ErrInvalidCookieToken
	}

	sessionID, err := token.Claims.GetSubject()
	if err != nil || sessionID == "" {
		return "", ErrInvalidCookieToken
	}

	return sessionID, nil
}
