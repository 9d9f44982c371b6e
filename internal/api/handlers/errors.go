package handlers

import (
	"errors"
	"net/http"
	"runtime/debug"

	"inventory-app/internal/services"

	"github.com/gin-gonic/gin"
)

// renderErrorPage renders the generic error page. Outside release mode the
// page also carries the error detail and a stack trace.
func renderErrorPage(c *gin.Context, status int, title string, err error) {
	data := gin.H{
		"Title":  title,
		"Status": status,
	}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		data["Detail"] = err.Error()
		data["Stack"] = string(debug.Stack())
	}
	c.HTML(status, "error.html", data)
}

// renderWorkflowError maps a service error onto the error page: not-found is
// 404-class, everything else 500-class. Validation failures never reach this
// path; they re-render their form instead.
func renderWorkflowError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		renderErrorPage(c, http.StatusNotFound, resource+" Not Found", err)
	case errors.Is(err, services.ErrStoreUnavailable):
		renderErrorPage(c, http.StatusInternalServerError, "No Database Response", err)
	default:
		renderErrorPage(c, http.StatusInternalServerError, "Something Went Wrong", err)
	}
}

// NotFoundPage handles unmatched routes.
func NotFoundPage(c *gin.Context) {
	renderErrorPage(c, http.StatusNotFound, "Page Not Found", nil)
}
