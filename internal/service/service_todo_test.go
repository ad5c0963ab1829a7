package service_test

import (
	"context"
	"testing"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/mock"
	. "github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTodoSvc(t *testing.T, ctrl *gomock.Controller) (TodoService, *mock.MockTodoRepository) {
	t.Helper()

	todos := mock.NewMockTodoRepository(ctrl)
	return NewTodoService(todos, logger.Nop()), todos
}

func TestTodoService_CreateTodo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	todos.EXPECT().
		CreateTodo(ctx, models.Todo{UserID: "user-1", Content: "buy milk"}).
		Return(models.Todo{ID: "todo-1", UserID: "user-1", Content: "buy milk"}, nil)

	created, err := svc.CreateTodo(ctx, models.User{ID: "user-1"}, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "todo-1", created.ID)
}

func TestTodoService_CreateTodo_BlankContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateTodo(ctx, models.User{ID: "user-1"}, content)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestTodoService_DeleteTodo_OwnershipScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	todos.EXPECT().
		DeleteTodo(ctx, "user-1", "someone-elses-todo").
		Return(store.ErrTodoNotFound)

	err := svc.DeleteTodo(ctx, models.User{ID: "user-1"}, "someone-elses-todo")
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestTodoService_GetTodos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Todo{{ID: "todo-2", Content: "newer"}, {ID: "todo-1", Content: "older"}}
	todos.EXPECT().GetUserTodos(ctx, "user-1").Return(want, nil)

	got, err := svc.GetTodos(ctx, models.User{ID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTodoService_DeleteAllTodos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	todos.EXPECT().DeleteAllTodos(ctx, "user-1").Return(nil)

	assert.NoError(t, svc.DeleteAllTodos(ctx, models.User{ID: "user-1"}))
}
