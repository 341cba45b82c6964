package service

import (
	"strings"
	"unicode/utf8"

	dom "Todolists/internal/domain"
)

const (
	minNameLength = 1
	maxNameLength = 100
)

const (
	msgListLength   = "List name must be between 1 and 100 characters."
	msgListUnique   = "List name must be unique."
	msgTodoLength   = "Todo must be between 1 and 100 characters."
	msgListNotFound = "The specified list was not found."
	msgTodoNotFound = "The specified todo was not found."
	noExcludedIndex = -1
)

// Recorder observes the outcome of each list/todo operation.
type Recorder interface {
	ObserveOperation(op string, err error)
}

// ListService implements list and todo operations against a session's
// list collection. It holds no state of its own.
type ListService struct {
	rec Recorder
}

// NewListService creates a ListService. rec may be nil.
func NewListService(rec Recorder) *ListService {
	return &ListService{rec: rec}
}

// ErrorForListName validates a trimmed list name. except is the index of
// the list being renamed, or -1 when creating.
func ErrorForListName(lists dom.Lists, name string, except int) error {
	if !validLength(name) {
		return invalid(ErrInvalidLength, msgListLength)
	}
	for i, l := range lists {
		if i != except && l.Name == name {
			return invalid(ErrDuplicateName, msgListUnique)
		}
	}
	return nil
}

// ErrorForTodoName validates a trimmed todo name.
func ErrorForTodoName(name string) error {
	if !validLength(name) {
		return invalid(ErrInvalidLength, msgTodoLength)
	}
	return nil
}

func validLength(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minNameLength && n <= maxNameLength
}

// GetList resolves a positional index to a list.
func (s *ListService) GetList(lists dom.Lists, id int) (*dom.List, error) {
	l, ok := lists.At(id)
	if !ok {
		return nil, invalid(ErrNotFound, msgListNotFound)
	}
	return l, nil
}

// CreateList appends a new empty list and returns its index.
func (s *ListService) CreateList(lists *dom.Lists, rawName string) (int, error) {
	name := strings.TrimSpace(rawName)
	if err := ErrorForListName(*lists, name, noExcludedIndex); err != nil {
		s.observe("create_list", err)
		return 0, err
	}
	*lists = append(*lists, dom.List{Name: name, Todos: []dom.Todo{}})
	s.observe("create_list", nil)
	return len(*lists) - 1, nil
}

// UpdateList renames the list at id in place. Keeping the current name is allowed.
func (s *ListService) UpdateList(lists dom.Lists, id int, rawName string) error {
	l, err := s.GetList(lists, id)
	if err != nil {
		s.observe("update_list", err)
		return err
	}
	name := strings.TrimSpace(rawName)
	if err := ErrorForListName(lists, name, id); err != nil {
		s.observe("update_list", err)
		return err
	}
	l.Name = name
	s.observe("update_list", nil)
	return nil
}

// DeleteList removes the list at id; later lists shift down by one.
func (s *ListService) DeleteList(lists *dom.Lists, id int) error {
	if _, err := s.GetList(*lists, id); err != nil {
		s.observe("delete_list", err)
		return err
	}
	*lists = append((*lists)[:id], (*lists)[id+1:]...)
	s.observe("delete_list", nil)
	return nil
}

// AddTodo appends an incomplete todo to the list at listID and returns its index.
func (s *ListService) AddTodo(lists dom.Lists, listID int, rawName string) (int, error) {
	l, err := s.GetList(lists, listID)
	if err != nil {
		s.observe("add_todo", err)
		return 0, err
	}
	name := strings.TrimSpace(rawName)
	if err := ErrorForTodoName(name); err != nil {
		s.observe("add_todo", err)
		return 0, err
	}
	l.Todos = append(l.Todos, dom.Todo{Name: name})
	s.observe("add_todo", nil)
	return len(l.Todos) - 1, nil
}

// DeleteTodo removes a todo; later todos in the same list shift down by one.
func (s *ListService) DeleteTodo(lists dom.Lists, listID, todoID int) error {
	l, err := s.todoList(lists, listID, todoID)
	if err != nil {
		s.observe("delete_todo", err)
		return err
	}
	l.Todos = append(l.Todos[:todoID], l.Todos[todoID+1:]...)
	s.observe("delete_todo", nil)
	return nil
}

// SetTodoCompleted sets the completed flag to the given value.
func (s *ListService) SetTodoCompleted(lists dom.Lists, listID, todoID int, completed bool) error {
	l, err := s.todoList(lists, listID, todoID)
	if err != nil {
		s.observe("set_todo_completed", err)
		return err
	}
	l.Todos[todoID].Completed = completed
	s.observe("set_todo_completed", nil)
	return nil
}

// CompleteAll marks every todo in the list as completed.
func (s *ListService) CompleteAll(lists dom.Lists, listID int) error {
	l, err := s.GetList(lists, listID)
	if err != nil {
		s.observe("complete_all", err)
		return err
	}
	for i := range l.Todos {
		l.Todos[i].Completed = true
	}
	s.observe("complete_all", nil)
	return nil
}

func (s *ListService) todoList(lists dom.Lists, listID, todoID int) (*dom.List, error) {
	l, err := s.GetList(lists, listID)
	if err != nil {
		return nil, err
	}
	if todoID < 0 || todoID >= len(l.Todos) {
		return nil, invalid(ErrNotFound, msgTodoNotFound)
	}
	return l, nil
}

func (s *ListService) observe(op string, err error) {
	if s.rec != nil {
		s.rec.ObserveOperation(op, err)
	}
}
