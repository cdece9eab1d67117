// Package controller provides the HTTP request handlers of the blog.
package controller

import (
	"goblog/database/model"
	"goblog/web/middleware"

	"github.com/gin-gonic/gin"
)

// BaseController provides functionality shared by all controllers.
type BaseController struct{}

// currentUser returns the identity rehydrated for this request, or nil for
// an anonymous visitor.
func (a *BaseController) currentUser(c *gin.Context) *model.User {
	return middleware.GetCurrentUser(c)
}
