package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"Todolists/internal/dto"
	"Todolists/internal/logging"
	"Todolists/internal/service"
	"Todolists/internal/session"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.ListService
}

func NewTodoHandler(svc *service.ListService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Add a todo to a list
// @Tags         todos
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id    path      int     true  "List position"
// @Param        todo  formData  string  true  "Todo text, 1-100 characters"
// @Success      303
// @Success      200  "List re-rendered with a validation error"
// @Failure      400
// @Failure      404
// @Router       /lists/{id}/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	id, list, ok := resolveList(c, h.svc)
	if !ok {
		return
	}
	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "todo is required.")
		return
	}
	sess := session.FromContext(c)
	todoID, err := h.svc.AddTodo(sess.Lists, id, *form.Todo)
	if err != nil {
		if failed(c, err) {
			return
		}
		sess.Error = err.Error()
		renderList(c, http.StatusOK, id, list, strings.TrimSpace(*form.Todo))
		return
	}
	logging.WithSession(session.IDFromContext(c)).Info("Todo added", "list_id", id, "todo_id", todoID)
	sess.Success = "The todo was added."
	redirect(c, listPath(id))
}

// Delete godoc
// @Summary      Delete a todo
// @Description  Todos after the deleted one move down by one position.
// @Tags         todos
// @Param        id       path  int  true  "List position"
// @Param        todo_id  path  int  true  "Todo position"
// @Success      303
// @Failure      404
// @Router       /lists/{id}/todos/{todo_id}/delete [post]
func (h *TodoHandler) Delete(c *gin.Context) {
	listID, todoID, ok := h.bindTodo(c)
	if !ok {
		return
	}
	sess := session.FromContext(c)
	if err := h.svc.DeleteTodo(sess.Lists, listID, todoID); err != nil {
		failed(c, err)
		return
	}
	logging.WithSession(session.IDFromContext(c)).Info("Todo deleted", "list_id", listID, "todo_id", todoID)
	sess.Success = "The todo has been deleted."
	redirect(c, listPath(listID))
}

// Update godoc
// @Summary      Set a todo's completion
// @Tags         todos
// @Accept       x-www-form-urlencoded
// @Param        id         path      int     true   "List position"
// @Param        todo_id    path      int     true   "Todo position"
// @Param        completed  formData  string  false  "\"true\" to complete, anything else to reopen"
// @Success      303
// @Failure      404
// @Router       /lists/{id}/todos/{todo_id} [post]
func (h *TodoHandler) Update(c *gin.Context) {
	listID, todoID, ok := h.bindTodo(c)
	if !ok {
		return
	}
	var form dto.CompletedForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Invalid form.")
		return
	}
	sess := session.FromContext(c)
	if err := h.svc.SetTodoCompleted(sess.Lists, listID, todoID, form.IsCompleted()); err != nil {
		failed(c, err)
		return
	}
	sess.Success = "The todo has been updated."
	redirect(c, listPath(listID))
}

// CompleteAll godoc
// @Summary      Complete every todo in a list
// @Tags         todos
// @Param        id   path  int  true  "List position"
// @Success      303
// @Failure      404
// @Router       /lists/{id}/complete_all [post]
func (h *TodoHandler) CompleteAll(c *gin.Context) {
	id, _, ok := resolveList(c, h.svc)
	if !ok {
		return
	}
	sess := session.FromContext(c)
	if err := h.svc.CompleteAll(sess.Lists, id); err != nil {
		failed(c, err)
		return
	}
	sess.Success = "All todos have been completed."
	redirect(c, listPath(id))
}

func (h *TodoHandler) bindTodo(c *gin.Context) (listID, todoID int, ok bool) {
	var uri dto.TodoURI
	if err := c.ShouldBindUri(&uri); err != nil {
		notFound(c, msgListNotFound)
		return 0, 0, false
	}
	if listID, ok = uri.ListIndex(); !ok {
		notFound(c, msgListNotFound)
		return 0, 0, false
	}
	if todoID, ok = uri.TodoIndex(); !ok {
		notFound(c, "The specified todo was not found.")
		return 0, 0, false
	}
	return listID, todoID, true
}

func listPath(id int) string {
	return "/lists/" + strconv.Itoa(id)
}
