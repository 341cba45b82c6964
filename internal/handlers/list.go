package handlers

import (
	"net/http"
	"strings"

	dom "Todolists/internal/domain"
	"Todolists/internal/dto"
	"Todolists/internal/logging"
	"Todolists/internal/service"
	"Todolists/internal/session"

	"github.com/gin-gonic/gin"
)

const msgListNotFound = "The specified list was not found."

type ListHandler struct {
	svc *service.ListService
}

func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// Index godoc
// @Summary      Show all lists, incomplete first
// @Tags         lists
// @Produce      html
// @Success      200
// @Router       /lists [get]
func (h *ListHandler) Index(c *gin.Context) {
	sess := session.FromContext(c)
	render(c, http.StatusOK, "lists.tmpl", gin.H{"Lists": dom.SortLists(sess.Lists)})
}

// New godoc
// @Summary      Show the new list form
// @Tags         lists
// @Produce      html
// @Success      200
// @Router       /lists/new [get]
func (h *ListHandler) New(c *gin.Context) {
	render(c, http.StatusOK, "new_list.tmpl", gin.H{"ListName": ""})
}

// Create godoc
// @Summary      Create a list
// @Tags         lists
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        list_name  formData  string  true  "List name, 1-100 characters"
// @Success      303
// @Success      200  "Form re-rendered with a validation error"
// @Failure      400
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	var form dto.ListNameForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "list_name is required.")
		return
	}
	sess := session.FromContext(c)
	idx, err := h.svc.CreateList(&sess.Lists, *form.ListName)
	if err != nil {
		if failed(c, err) {
			return
		}
		sess.Error = err.Error()
		render(c, http.StatusOK, "new_list.tmpl", gin.H{"ListName": strings.TrimSpace(*form.ListName)})
		return
	}
	logging.WithSession(session.IDFromContext(c)).Info("List created", "list_id", idx)
	sess.Success = "The list has been created."
	redirect(c, "/lists")
}

// Show godoc
// @Summary      Show one list and its todos
// @Tags         lists
// @Produce      html
// @Param        id   path  int  true  "List position"
// @Success      200
// @Failure      404
// @Router       /lists/{id} [get]
func (h *ListHandler) Show(c *gin.Context) {
	id, list, ok := h.resolve(c)
	if !ok {
		return
	}
	renderList(c, http.StatusOK, id, list, "")
}

// Edit godoc
// @Summary      Show the edit list form
// @Tags         lists
// @Produce      html
// @Param        id   path  int  true  "List position"
// @Success      200
// @Failure      404
// @Router       /lists/{id}/edit [get]
func (h *ListHandler) Edit(c *gin.Context) {
	id, list, ok := h.resolve(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "edit_list.tmpl", gin.H{"ListID": id, "ListName": list.Name})
}

// Update godoc
// @Summary      Rename a list
// @Tags         lists
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id         path      int     true  "List position"
// @Param        list_name  formData  string  true  "New name, 1-100 characters"
// @Success      303
// @Success      200  "Form re-rendered with a validation error"
// @Failure      400
// @Failure      404
// @Router       /lists/{id} [post]
func (h *ListHandler) Update(c *gin.Context) {
	id, _, ok := h.resolve(c)
	if !ok {
		return
	}
	var form dto.ListNameForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "list_name is required.")
		return
	}
	sess := session.FromContext(c)
	if err := h.svc.UpdateList(sess.Lists, id, *form.ListName); err != nil {
		if failed(c, err) {
			return
		}
		sess.Error = err.Error()
		render(c, http.StatusOK, "edit_list.tmpl", gin.H{"ListID": id, "ListName": strings.TrimSpace(*form.ListName)})
		return
	}
	logging.WithSession(session.IDFromContext(c)).Info("List renamed", "list_id", id)
	sess.Success = "The list has been updated."
	redirect(c, listPath(id))
}

// Delete godoc
// @Summary      Delete a list
// @Description  Lists after the deleted one move down by one position.
// @Tags         lists
// @Param        id   path  int  true  "List position"
// @Success      303
// @Failure      404
// @Router       /lists/{id}/delete [post]
func (h *ListHandler) Delete(c *gin.Context) {
	id, _, ok := h.resolve(c)
	if !ok {
		return
	}
	sess := session.FromContext(c)
	if err := h.svc.DeleteList(&sess.Lists, id); err != nil {
		failed(c, err)
		return
	}
	logging.WithSession(session.IDFromContext(c)).Info("List deleted", "list_id", id)
	sess.Success = "The list has been deleted."
	redirect(c, "/lists")
}

// resolve binds :id and looks up the list, rendering 404 when it fails.
func (h *ListHandler) resolve(c *gin.Context) (int, *dom.List, bool) {
	return resolveList(c, h.svc)
}

func resolveList(c *gin.Context, svc *service.ListService) (int, *dom.List, bool) {
	var uri dto.ListURI
	if err := c.ShouldBindUri(&uri); err != nil {
		notFound(c, msgListNotFound)
		return 0, nil, false
	}
	id, ok := uri.Index()
	if !ok {
		notFound(c, msgListNotFound)
		return 0, nil, false
	}
	list, err := svc.GetList(session.FromContext(c).Lists, id)
	if err != nil {
		failed(c, err)
		return 0, nil, false
	}
	return id, list, true
}

func renderList(c *gin.Context, status int, id int, list *dom.List, todoName string) {
	render(c, status, "list.tmpl", gin.H{
		"ListID":   id,
		"List":     list,
		"Todos":    dom.SortTodos(list.Todos),
		"TodoName": todoName,
	})
}
