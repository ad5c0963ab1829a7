package http

import (
	"encoding/json"
	"net/http"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/utils"
	"github.com/osavchuk/todostack/models"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeErrorBody(w, http.StatusUnauthorized, codeUnauthorized, "You must be logged in to view sessions")
		return
	}
	currentSessionID, _ := utils.GetSessionIDFromContext(ctx)

	sessions, err := h.services.SessionService.GetUserSessions(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionListResponse{
		Sessions:         sessions,
		CurrentSessionID: currentSessionID,
	}, http.StatusOK)
}

type revokeSessionRequest struct {
	SessionID string `json:"sessionId"`
}

func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeErrorBody(w, http.StatusUnauthorized, codeUnauthorized, "You must be logged in")
		return
	}
	currentSessionID, _ := utils.GetSessionIDFromContext(ctx)

	var req revokeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid revoke request body")
		writeErrorBody(w, http.StatusBadRequest, codeBadRequest, "")
		return
	}
	if req.SessionID == "" {
		writeValidationError(w, map[string]string{"sessionId": "Session id is required"})
		return
	}

	if err := h.services.SessionService.RevokeSession(ctx, user, currentSessionID, req.SessionID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("session_id", req.SessionID).Msg("session revoked")
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
