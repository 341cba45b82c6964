package domain

// Todo is a single item within a List, addressed by its position.
type Todo struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// IndexedTodo pairs a todo with its position in the owning list.
type IndexedTodo struct {
	Todo  Todo
	Index int
}

// SortTodos orders todos for display: incomplete first, completed last,
// keeping relative order within each group. Original indices are preserved.
func SortTodos(todos []Todo) []IndexedTodo {
	out := make([]IndexedTodo, 0, len(todos))
	for i, t := range todos {
		if !t.Completed {
			out = append(out, IndexedTodo{Todo: t, Index: i})
		}
	}
	for i, t := range todos {
		if t.Completed {
			out = append(out, IndexedTodo{Todo: t, Index: i})
		}
	}
	return out
}
