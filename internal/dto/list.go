package dto

import "Todolists/internal/utils"

// ListURI binds the list index segment shared by every /lists/:id route.
type ListURI struct {
	ID string `uri:"id" binding:"required"`
}

// Index parses the positional list index.
func (u ListURI) Index() (int, bool) { return utils.ParseIndex(u.ID) }

// TodoURI binds /lists/:id/todos/:todo_id.
type TodoURI struct {
	ID     string `uri:"id" binding:"required"`
	TodoID string `uri:"todo_id" binding:"required"`
}

func (u TodoURI) ListIndex() (int, bool) { return utils.ParseIndex(u.ID) }

func (u TodoURI) TodoIndex() (int, bool) { return utils.ParseIndex(u.TodoID) }

// ListNameForm is the body of POST /lists and POST /lists/:id.
// The field must be present; an empty value is left to name validation.
type ListNameForm struct {
	ListName *string `form:"list_name" binding:"required"`
}

// TodoForm is the body of POST /lists/:id/todos.
type TodoForm struct {
	Todo *string `form:"todo" binding:"required"`
}

// CompletedForm is the body of POST /lists/:id/todos/:todo_id.
// Only the literal "true" marks the todo completed.
type CompletedForm struct {
	Completed string `form:"completed"`
}

func (f CompletedForm) IsCompleted() bool { return f.Completed == "true" }
