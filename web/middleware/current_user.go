// Package middleware provides cross-cutting request interceptors: identity
// rehydration and the admin-only guard.
package middleware

import (
	"goblog/database/model"
	"goblog/web/service"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the rehydrated *model.User.
const CurrentUserKey = "CURRENT_USER"

// CurrentUser loads the user referenced by the session into the request
// context. A session id that no longer resolves to a user is treated as
// anonymous, never as an error.
func CurrentUser(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := session.GetLoginUserId(c); ok {
			if user, err := userService.GetUser(id); err == nil {
				c.Set(CurrentUserKey, user)
			}
		}
		c.Next()
	}
}

// GetCurrentUser returns the user placed in the context by CurrentUser,
// or nil for an anonymous request.
func GetCurrentUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(CurrentUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
