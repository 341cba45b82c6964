package handlers

import (
	"errors"
	"net/http"

	"Todolists/internal/logging"
	"Todolists/internal/service"
	"Todolists/internal/session"

	"github.com/gin-gonic/gin"
)

// render executes a page template. Pending flash notices are consumed here,
// so each is shown exactly once.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flash"] = session.FromContext(c).PopFlash()
	if !commit(c) {
		return
	}
	c.HTML(status, name, data)
}

// redirect answers POSTs with 303 and everything else with 302.
func redirect(c *gin.Context, location string) {
	if !commit(c) {
		return
	}
	status := http.StatusFound
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}

// commit persists the session before a response is written. On failure it
// answers 500 and reports false.
func commit(c *gin.Context) bool {
	if err := session.Save(c); err != nil {
		logging.WithError(err).Error("Failed to save session", "session_id", session.IDFromContext(c), "path", c.Request.URL.Path)
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": msgInternal,
			"Flash":   session.Flash{},
		})
		return false
	}
	return true
}

const msgInternal = "Something went wrong."

func renderError(c *gin.Context, status int, msg string) {
	render(c, status, "error.tmpl", gin.H{"Status": status, "Message": msg})
}

func notFound(c *gin.Context, msg string) {
	renderError(c, http.StatusNotFound, msg)
}

func badRequest(c *gin.Context, msg string) {
	renderError(c, http.StatusBadRequest, msg)
}

// failed handles a service error that is not a recoverable form error.
// It reports whether err was handled.
func failed(c *gin.Context, err error) bool {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		notFound(c, err.Error())
		return true
	case errors.As(err, &verr):
		return false
	default:
		logging.WithError(err).Error("Request failed", "session_id", session.IDFromContext(c), "path", c.Request.URL.Path)
		renderError(c, http.StatusInternalServerError, msgInternal)
		return true
	}
}
