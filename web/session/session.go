// Package session binds the authenticated user id to the request's cookie
// session. Only the id is stored; the full user row is rehydrated from the
// database on each request.
package session

import (
	"goblog/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUserId, user.Id)
	return s.Save()
}

// GetLoginUserId returns the user id stored in the session, if any.
func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	obj := s.Get(loginUserId)
	if obj == nil {
		return 0, false
	}
	id, ok := obj.(int)
	return id, ok
}

func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
