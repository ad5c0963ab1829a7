package http

import (
	"net/http"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/internal/utils"
)

// currentUser reports who the cookie belongs to. An anonymous caller is not
// an error here: the body is a JSON null and the frontend renders the
// logged-out state.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed profile form")
		writeErrorBody(w, http.StatusBadRequest, codeBadRequest, "")
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	currentPassword := r.PostFormValue("currentPassword")
	newPassword := r.PostFormValue("password")
	passwordConfirmation := r.PostFormValue("passwordConfirmation")

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "Name is required"
	}
	if !validEmail(email) {
		fields["email"] = "Invalid email format"
	}
	if currentPassword == "" {
		fields["currentPassword"] = "Current password is required"
	}
	if newPassword != "" && newPassword != passwordConfirmation {
		fields["passwordConfirmation"] = "Passwords must match"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, user.ID, service.ProfilePatch{
		Name:            name,
		Email:           email,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	// A password change deletes every session of the user, including the one
	// that authenticated this request; a fresh session keeps the caller
	// logged in. Without a password change the existing sessions stay put.
	if newPassword != "" {
		if _, err = h.websession.Establish(ctx, w, updatedUser, h.requestInfo.RequestInfo(r)); err != nil {
			writeError(w, r, err)
			return
		}
	}

	log.Debug().Str("user_id", updatedUser.ID).Msg("profile updated")
	utils.WriteJSON(w, updatedUser, http.StatusOK)
}
