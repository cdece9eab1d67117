package controller

import (
	"net/http"

	"goblog/logger"
	"goblog/web/service"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the registration submission. Password equality is
// checked separately after field validation so a mismatch produces a
// flashed message rather than a field error.
type RegisterForm struct {
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// LoginForm carries login credentials. Both fields are only required to be
// non-empty.
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	BaseController

	userService service.UserService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, http.StatusOK, "register.html", "Register", gin.H{"form": RegisterForm{}})
}

func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, http.StatusOK, "register.html", "Register", gin.H{"form": form, "errors": fieldErrors(err)})
		return
	}

	if form.Password != form.ConfirmPassword {
		flash(c, "Check the password you have re-entered")
		html(c, http.StatusOK, "register.html", "Register", gin.H{"form": form})
		return
	}

	user, err := a.userService.Register(form.Name, form.Email, form.Password)
	if err == service.ErrEmailTaken {
		flash(c, "Your email is already registered, try logging in")
		c.Redirect(http.StatusFound, "/login")
		return
	} else if err != nil {
		serverError(c, err)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) loginPage(c *gin.Context) {
	html(c, http.StatusOK, "login.html", "Log In", gin.H{"form": LoginForm{}})
}

func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, http.StatusOK, "login.html", "Log In", gin.H{"form": form, "errors": fieldErrors(err)})
		return
	}

	user, err := a.userService.CheckUser(form.Email, form.Password)
	switch err {
	case nil:
	case service.ErrUnknownEmail:
		flash(c, "This email is not registered, try registering first")
		html(c, http.StatusOK, "login.html", "Log In", gin.H{"form": form})
		return
	case service.ErrWrongPassword:
		flash(c, "Check the password you have entered")
		html(c, http.StatusOK, "login.html", "Log In", gin.H{"form": form})
		return
	default:
		serverError(c, err)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in successfully", user.Email)
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) logout(c *gin.Context) {
	if user := a.currentUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
