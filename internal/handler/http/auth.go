package http

import (
	"net/http"
	"net/mail"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/utils"
)

// The auth endpoints accept browser form posts and answer with a 303 redirect
// on success, so a plain <form> submission lands back on the page it came
// from. Validation failures render the JSON 422 shape instead: the frontend
// intercepts those for inline form re-display.

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed login form")
		writeErrorBody(w, http.StatusBadRequest, codeBadRequest, "")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	fields := map[string]string{}
	if !validEmail(email) {
		fields["email"] = "Invalid email format"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	user, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.websession.Establish(ctx, w, user, h.requestInfo.RequestInfo(r)); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user logged in")
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed signup form")
		writeErrorBody(w, http.StatusBadRequest, codeBadRequest, "")
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	passwordConfirmation := r.PostFormValue("passwordConfirmation")

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "Name is required"
	}
	if !validEmail(email) {
		fields["email"] = "Invalid email format"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if password != passwordConfirmation {
		fields["passwordConfirmation"] = "Passwords must match"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, name, email, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.websession.Establish(ctx, w, user, h.requestInfo.RequestInfo(r)); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user signed up")
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

// logout is idempotent: an anonymous caller just gets the cookie cleared and
// the same redirect.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		if err := h.services.SessionService.DeleteSession(ctx, sessionID); err != nil {
			log.Err(err).Str("session_id", sessionID).Msg("session deletion on logout failed")
		}
	}

	h.websession.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func redirectTarget(r *http.Request) string {
	if target := r.PostFormValue("redirectUrl"); target != "" {
		return target
	}
	return "/"
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
