package controller

import (
	"errors"
	"net/http"

	"goblog/config"
	"goblog/logger"
	"goblog/web/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// html renders a template with the ambient page data every view expects:
// the page title, the current user, whether they are the administrator,
// and any pending flash messages.
func html(c *gin.Context, code int, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	if _, ok := data["errors"]; !ok {
		data["errors"] = map[string]string{}
	}
	user := middleware.GetCurrentUser(c)
	data["user"] = user
	data["is_admin"] = user != nil && user.Id == config.GetAdminUserId()
	data["flashes"] = takeFlashes(c)
	c.HTML(code, name, data)
}

// flash queues a one-shot message shown on the next rendered page.
func flash(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	if err := s.Save(); err != nil {
		logger.Warning("unable to save session flash:", err)
	}
}

// takeFlashes drains the queued flash messages.
func takeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		if err := s.Save(); err != nil {
			logger.Warning("unable to save session after reading flashes:", err)
		}
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// fieldErrors maps a binding failure to per-field messages keyed by struct
// field name, for inline display next to the offending input.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "This field is required"
			case "email":
				out[fe.Field()] = "Invalid email address"
			case "url":
				out[fe.Field()] = "Invalid URL"
			default:
				out[fe.Field()] = "Invalid value"
			}
		}
	} else if err != nil {
		out["Form"] = "Invalid form data"
	}
	return out
}

// notFound renders the generic 404 page.
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"code":    http.StatusNotFound,
		"message": "Page not found",
	})
	c.Abort()
}

// serverError logs the fault and renders the generic failure page with no
// detail leakage.
func serverError(c *gin.Context, err error) {
	logger.Error("server error:", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"code":    http.StatusInternalServerError,
		"message": "Something went wrong",
	})
	c.Abort()
}
