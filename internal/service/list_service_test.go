package service

import (
	"errors"
	"strings"
	"testing"

	dom "Todolists/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedOp struct {
	op     string
	result string
}

type fakeRecorder struct {
	ops []recordedOp
}

func (r *fakeRecorder) ObserveOperation(op string, err error) {
	r.ops = append(r.ops, recordedOp{op: op, result: Result(err)})
}

func TestErrorForListName_Length(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"empty", "", false},
		{"one char", "a", true},
		{"exactly 100", strings.Repeat("a", 100), true},
		{"101", strings.Repeat("a", 101), false},
		{"100 multibyte runes", strings.Repeat("é", 100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrorForListName(nil, tt.input, -1)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidLength)
			assert.Equal(t, "List name must be between 1 and 100 characters.", err.Error())
		})
	}
}

func TestErrorForListName_DuplicateIsCaseSensitive(t *testing.T) {
	lists := dom.Lists{{Name: "Groceries"}}

	assert.ErrorIs(t, ErrorForListName(lists, "Groceries", -1), ErrDuplicateName)
	assert.NoError(t, ErrorForListName(lists, "groceries", -1))
	assert.NoError(t, ErrorForListName(lists, "Groceries", 0), "a list may keep its own name")
}

func TestErrorForTodoName(t *testing.T) {
	assert.NoError(t, ErrorForTodoName("Milk"))

	err := ErrorForTodoName("")
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, "Todo must be between 1 and 100 characters.", err.Error())

	assert.ErrorIs(t, ErrorForTodoName(strings.Repeat("x", 101)), ErrInvalidLength)
}

func TestCreateList(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewListService(rec)
	var lists dom.Lists

	idx, err := svc.CreateList(&lists, "  Groceries  ")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	require.Len(t, lists, 1)
	assert.Equal(t, "Groceries", lists[0].Name)
	assert.Empty(t, lists[0].Todos)

	idx, err = svc.CreateList(&lists, "Chores")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	assert.Equal(t, []recordedOp{{"create_list", "ok"}, {"create_list", "ok"}}, rec.ops)
}

func TestCreateList_RejectsAndLeavesCollectionUnchanged(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewListService(rec)
	lists := dom.Lists{{Name: "Groceries"}}

	_, err := svc.CreateList(&lists, "   ")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = svc.CreateList(&lists, strings.Repeat("a", 101))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = svc.CreateList(&lists, " Groceries ")
	assert.ErrorIs(t, err, ErrDuplicateName)

	assert.Equal(t, dom.Lists{{Name: "Groceries"}}, lists)
	assert.Equal(t, "duplicate_name", rec.ops[2].result)
}

func TestUpdateList(t *testing.T) {
	svc := NewListService(nil)
	lists := dom.Lists{{Name: "Groceries"}, {Name: "Chores"}}

	require.NoError(t, svc.UpdateList(lists, 1, "Chores"), "unchanged name must succeed")
	require.NoError(t, svc.UpdateList(lists, 1, " Housework "))
	assert.Equal(t, "Housework", lists[1].Name)

	assert.ErrorIs(t, svc.UpdateList(lists, 1, "Groceries"), ErrDuplicateName)
	assert.ErrorIs(t, svc.UpdateList(lists, 1, ""), ErrInvalidLength)
	assert.Equal(t, "Housework", lists[1].Name)

	assert.ErrorIs(t, svc.UpdateList(lists, 5, "Anything"), ErrNotFound)
}

func TestDeleteList_ShiftsLaterIndices(t *testing.T) {
	svc := NewListService(nil)
	lists := dom.Lists{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}

	require.NoError(t, svc.DeleteList(&lists, 1))

	require.Len(t, lists, 3)
	assert.Equal(t, "A", lists[0].Name)
	assert.Equal(t, "C", lists[1].Name)
	assert.Equal(t, "D", lists[2].Name)

	assert.ErrorIs(t, svc.DeleteList(&lists, 3), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteList(&lists, -1), ErrNotFound)
	assert.Len(t, lists, 3)
}

func TestAddTodo(t *testing.T) {
	svc := NewListService(nil)
	lists := dom.Lists{{Name: "Groceries"}}

	idx, err := svc.AddTodo(lists, 0, " Milk ")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []dom.Todo{{Name: "Milk"}}, lists[0].Todos)

	_, err = svc.AddTodo(lists, 0, "")
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Len(t, lists[0].Todos, 1)

	_, err = svc.AddTodo(lists, 1, "Eggs")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTodo_RoundTrip(t *testing.T) {
	svc := NewListService(nil)
	lists := dom.Lists{{Name: "L"}}
	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.AddTodo(lists, 0, name)
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteTodo(lists, 0, 2))
	idx, err := svc.AddTodo(lists, 0, "d")
	require.NoError(t, err)

	assert.Equal(t, 2, idx)
	assert.Equal(t, []dom.Todo{{Name: "a"}, {Name: "b"}, {Name: "d"}}, lists[0].Todos)

	require.NoError(t, svc.DeleteTodo(lists, 0, 0))
	assert.Equal(t, []dom.Todo{{Name: "b"}, {Name: "d"}}, lists[0].Todos)

	assert.ErrorIs(t, svc.DeleteTodo(lists, 0, 2), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteTodo(lists, 3, 0), ErrNotFound)
}

func TestSetTodoCompleted_IsAbsoluteSet(t *testing.T) {
	svc := NewListService(nil)
	lists := dom.Lists{{Name: "L", Todos: []dom.Todo{{Name: "a"}}}}

	require.NoError(t, svc.SetTodoCompleted(lists, 0, 0, true))
	require.NoError(t, svc.SetTodoCompleted(lists, 0, 0, true))
	assert.True(t, lists[0].Todos[0].Completed)

	require.NoError(t, svc.SetTodoCompleted(lists, 0, 0, false))
	assert.False(t, lists[0].Todos[0].Completed)

	err := svc.SetTodoCompleted(lists, 0, 1, true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "The specified todo was not found.", err.Error())
}

func TestCompleteAll(t *testing.T) {
	svc := NewListService(nil)
	lists := dom.Lists{{Name: "L", Todos: []dom.Todo{
		{Name: "a"}, {Name: "b", Completed: true}, {Name: "c"},
	}}}
	require.False(t, lists[0].IsComplete())

	require.NoError(t, svc.CompleteAll(lists, 0))

	for _, todo := range lists[0].Todos {
		assert.True(t, todo.Completed)
	}
	assert.True(t, lists[0].IsComplete())
	assert.ErrorIs(t, svc.CompleteAll(lists, 1), ErrNotFound)
}

func TestGroceriesScenario(t *testing.T) {
	svc := NewListService(nil)
	var lists dom.Lists

	idx, err := svc.CreateList(&lists, "Groceries")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	_, err = svc.AddTodo(lists, idx, "Milk")
	require.NoError(t, err)
	assert.Equal(t, []dom.Todo{{Name: "Milk", Completed: false}}, lists[0].Todos)

	require.NoError(t, svc.SetTodoCompleted(lists, idx, 0, true))
	assert.Equal(t, []dom.Todo{{Name: "Milk", Completed: true}}, lists[0].Todos)
	assert.True(t, lists[0].IsComplete())

	_, err = svc.CreateList(&lists, "Groceries")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, lists, 1)
}

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "invalid_length", Result(ErrorForTodoName("")))
	assert.Equal(t, "duplicate_name", Result(invalid(ErrDuplicateName, "x")))
	assert.Equal(t, "not_found", Result(invalid(ErrNotFound, "x")))
	assert.Equal(t, "error", Result(errors.New("boom")))
}
