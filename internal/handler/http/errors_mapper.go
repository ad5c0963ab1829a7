package http

import (
	"errors"
	"net/http"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/internal/utils"
	"github.com/osavchuk/todostack/models"
)

type apiError struct {
	status  int
	code    string
	message string
}

// errorMap translates business sentinels into the wire representation.
// Note the two deliberate oddities carried over from the product behaviour:
// a failed login is a 404 rather than a 401, and an unauthenticated caller
// of profile/todo routes also gets a plain 404.
var errorMap = map[error]apiError{
	service.ErrIncorrectEmailOrPassword:   {http.StatusNotFound, codeNotFound, "The combination of email and password is incorrect."},
	service.ErrWrongCurrentPassword:       {http.StatusUnprocessableEntity, codeUnprocessableEntity, "Your current password is wrong!"},
	service.ErrCannotRevokeCurrentSession: {http.StatusBadRequest, codeBadRequest, "Cannot revoke your current session"},
	service.ErrNotAuthenticated:           {http.StatusNotFound, codeNotFound, ""},
	service.ErrInvalidDataProvided:        {http.StatusUnprocessableEntity, codeUnprocessableEntity, ""},

	store.ErrEmailAlreadyRegistered: {http.StatusUnprocessableEntity, codeUnprocessableEntity, "This email is already registered."},
	store.ErrSessionNotFound:        {http.StatusNotFound, codeNotFound, "Session not found"},
	store.ErrUserNotFound:           {http.StatusNotFound, codeNotFound, ""},
	store.ErrTodoNotFound:           {http.StatusNotFound, codeNotFound, ""},
}

// writeError maps err through errorMap and renders the JSON error body.
// Unmapped errors collapse to a 500 with the generic message so that
// internals never leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, apiErr := range errorMap {
		if errors.Is(err, target) {
			log.Err(err).Str("code", apiErr.code).Msg("request failed")
			writeErrorBody(w, apiErr.status, apiErr.code, apiErr.message)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	writeErrorBody(w, http.StatusInternalServerError, codeInternalServerError, "")
}

// writeErrorBody renders {"code","message"}; an empty message falls back to
// the code's default text.
func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	if message == "" {
		message = defaultMessages[code]
	}

	utils.WriteJSON(w, models.ErrorResponse{Code: code, Message: message}, status)
}

// writeValidationError renders the 422 shape used for form and input
// validation: the generic unprocessable message plus per-field detail for
// form re-display.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Code:    codeUnprocessableEntity,
		Message: defaultMessages[codeUnprocessableEntity],
		Fields:  fields,
	}, http.StatusUnprocessableEntity)
}
