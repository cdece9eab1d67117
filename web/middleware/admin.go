package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired short-circuits any request whose identity is not the
// administrator. Anonymous visitors and ordinary users both get a 403
// before the wrapped handler runs.
func AdminRequired(adminId int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil || user.Id != adminId {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"code":    http.StatusForbidden,
				"message": "You are not allowed to do that",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
