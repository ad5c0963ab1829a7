package http

import (
	"encoding/json"
	"net/http"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/internal/utils"
	"github.com/osavchuk/todostack/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	todos, err := h.services.TodoService.GetTodos(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

type createTodoRequest struct {
	Content string `json:"content"`
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid todo create body")
		writeErrorBody(w, http.StatusBadRequest, codeBadRequest, "")
		return
	}
	if req.Content == "" {
		writeValidationError(w, map[string]string{"content": "Content is required"})
		return
	}

	todo, err := h.services.TodoService.CreateTodo(ctx, user, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

type deleteTodoRequest struct {
	ID string `json:"id"`
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var req deleteTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid todo delete body")
		writeErrorBody(w, http.StatusBadRequest, codeBadRequest, "")
		return
	}
	if req.ID == "" {
		writeValidationError(w, map[string]string{"id": "Id is required"})
		return
	}

	if err := h.services.TodoService.DeleteTodo(ctx, user, req.ID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteAllTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	if err := h.services.TodoService.DeleteAllTodos(ctx, user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
