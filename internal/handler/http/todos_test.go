package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListTodos_AnonymousGetsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestListTodos_ReturnsOwnedTodos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.todos.EXPECT().GetTodos(gomock.Any(), user).Return([]models.Todo{
		{ID: "todo-2", UserID: "user-1", Content: "newer"},
		{ID: "todo-1", UserID: "user-1", Content: "older"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Todo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Content)
}

func TestListTodos_EmptyListIsAnArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.todos.EXPECT().GetTodos(gomock.Any(), user).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateTodo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.todos.EXPECT().
		CreateTodo(gomock.Any(), user, "buy milk").
		Return(models.Todo{ID: "todo-1", UserID: "user-1", Content: "buy milk"}, nil)

	req := jsonRequest("/api/todos", `{"content":"buy milk"}`)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Todo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "todo-1", got.ID)
	assert.Equal(t, "buy milk", got.Content)
}

func TestCreateTodo_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	req := jsonRequest("/api/todos", `{"content":""}`)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, "Content is required", resp.Fields["content"])
}

func TestDeleteTodo_NotOwnedLooksAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.todos.EXPECT().
		DeleteTodo(gomock.Any(), user, "someone-elses-todo").
		Return(store.ErrTodoNotFound)

	req := jsonRequest("/api/todos/delete", `{"id":"someone-elses-todo"}`)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestDeleteTodo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.todos.EXPECT().DeleteTodo(gomock.Any(), user, "todo-1").Return(nil)

	req := jsonRequest("/api/todos/delete", `{"id":"todo-1"}`)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SuccessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
}

func TestDeleteAllTodos_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	user := models.User{ID: "user-1", Email: "jane@example.com"}
	cookie := env.sessionCookie(t, "session-1", user)
	env.expectAuthenticated("session-1", user)

	env.todos.EXPECT().DeleteAllTodos(gomock.Any(), user).Return(nil)

	req := jsonRequest("/api/todos/delete-all", `{}`)
	req.AddCookie(cookie)
	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
}
