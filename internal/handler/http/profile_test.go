package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCurrentUser_AnonymousReturnsNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "null", rec.Body.String())
}

func TestCurrentUser_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Name: "Jane", Email: "jane@example.com", Password: "bcrypt-hash"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "jane@example.com", got.Email)

	// the password hash is tagged out of the JSON representation
	assert.NotContains(t, rec.Body.String(), "bcrypt-hash")
	assert.Empty(t, got.Password)
}

func TestUpdateProfile_AnonymousGetsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	rec := env.serve(formRequest("/api/user", map[string]string{
		"name":            "Jane",
		"email":           "jane@example.com",
		"currentPassword": "pw",
	}))

	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "The requested resource was not found.", resp.Message)
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.auth.EXPECT().
		UpdateProfile(gomock.Any(), "user-1", gomock.Any()).
		Return(models.User{}, service.ErrWrongCurrentPassword)

	req := formRequest("/api/user", map[string]string{
		"name":            "Jane",
		"email":           "jane@example.com",
		"currentPassword": "wrong",
	})
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, "Your current password is wrong!", resp.Message)
}

func TestUpdateProfile_SuccessRotatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Name: "Jane", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	updated := models.User{ID: "user-1", Name: "Jane Doe", Email: "jane.doe@example.com"}
	env.auth.EXPECT().
		UpdateProfile(gomock.Any(), "user-1", service.ProfilePatch{
			Name:            "Jane Doe",
			Email:           "jane.doe@example.com",
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		}).
		Return(updated, nil)
	env.requestInfo.EXPECT().RequestInfo(gomock.Any()).Return(models.RequestInfo{})
	env.sessions.EXPECT().
		CreateSession(gomock.Any(), updated, gomock.Any()).
		Return(models.Session{ID: "session-2", UserID: "user-1"}, nil)

	req := formRequest("/api/user", map[string]string{
		"name":                 "Jane Doe",
		"email":                "jane.doe@example.com",
		"currentPassword":      "old-password",
		"password":             "new-password",
		"passwordConfirmation": "new-password",
	})
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Jane Doe", got.Name)

	// fresh cookie for the replacement session
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.NotEmpty(t, cookies[0].Value)
	assert.NotEqual(t, cookie.Value, cookies[0].Value)
}

func TestUpdateProfile_WithoutPasswordKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Name: "Jane", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	updated := models.User{ID: "user-1", Name: "Jane Doe", Email: "jane.doe@example.com"}
	env.auth.EXPECT().
		UpdateProfile(gomock.Any(), "user-1", service.ProfilePatch{
			Name:            "Jane Doe",
			Email:           "jane.doe@example.com",
			CurrentPassword: "old-password",
		}).
		Return(updated, nil)

	// no CreateSession expectation: a name/email-only update must leave the
	// session set untouched

	req := formRequest("/api/user", map[string]string{
		"name":            "Jane Doe",
		"email":           "jane.doe@example.com",
		"currentPassword": "old-password",
	})
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Jane Doe", got.Name)

	// the cookie survives unchanged
	assert.Empty(t, rec.Result().Cookies())
}

func TestUpdateProfile_NewPasswordConfirmationMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	req := formRequest("/api/user", map[string]string{
		"name":                 "Jane",
		"email":                "jane@example.com",
		"currentPassword":      "old-password",
		"password":             "new-password",
		"passwordConfirmation": "other",
	})
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, "Passwords must match", resp.Fields["passwordConfirmation"])
}
