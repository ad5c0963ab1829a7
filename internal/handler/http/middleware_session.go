package http

import (
	"context"
	"net/http"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/utils"
)

// withSession resolves the session cookie on every request and, when it
// points at a live user, stores the user and session id in the request
// context. Anonymous requests pass through untouched; each handler decides
// for itself whether an anonymous caller is acceptable.
//
// The session row's last-used timestamp is refreshed here, best effort: a
// failed touch is logged and the request proceeds.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, sessionID, ok := h.websession.Resolve(ctx, r)
		if ok {
			ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)
			ctx = context.WithValue(ctx, utils.SessionIDCtxKey, sessionID)
			r = r.WithContext(ctx)

			if err := h.services.SessionService.TouchSession(ctx, sessionID); err != nil {
				logger.FromRequest(r).Warn().Err(err).Str("session_id", sessionID).Msg("session touch failed")
			}
		}

		next.ServeHTTP(w, r)
	})
}
