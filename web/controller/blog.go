package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"goblog/database"
	"goblog/web/service"

	"github.com/gin-gonic/gin"
)

// CommentForm is a single rich-text reply to a post.
type CommentForm struct {
	Comment string `form:"comment" binding:"required"`
}

// BlogController handles the public pages: post listing, single posts with
// their comments, the about page and the contact form.
type BlogController struct {
	BaseController

	postService    service.PostService
	commentService service.CommentService
	mailService    service.MailService
}

func NewBlogController(g *gin.RouterGroup) *BlogController {
	a := &BlogController{}
	a.initRouter(g)
	return a
}

func (a *BlogController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/post/:id", a.showPost)
	g.POST("/post/:id", a.postComment)
	g.GET("/about", a.about)
	g.GET("/contact", a.contactPage)
	g.POST("/contact", a.contact)
}

func (a *BlogController) index(c *gin.Context) {
	posts, err := a.postService.ListPosts()
	if err != nil {
		serverError(c, err)
		return
	}
	html(c, http.StatusOK, "index.html", "Home", gin.H{"posts": posts})
}

func (a *BlogController) showPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	post, err := a.postService.GetPost(id)
	if database.IsNotFound(err) {
		notFound(c)
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	html(c, http.StatusOK, "post.html", post.Title, gin.H{"post": post, "form": CommentForm{}})
}

func (a *BlogController) postComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	post, err := a.postService.GetPost(id)
	if database.IsNotFound(err) {
		notFound(c)
		return
	} else if err != nil {
		serverError(c, err)
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, http.StatusOK, "post.html", post.Title, gin.H{"post": post, "form": form, "errors": fieldErrors(err)})
		return
	}

	user := a.currentUser(c)
	if user == nil {
		flash(c, "You need to join us before making comments, if already registered try logging in")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := a.commentService.AddComment(id, user, form.Comment); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

func (a *BlogController) about(c *gin.Context) {
	html(c, http.StatusOK, "about.html", "About", nil)
}

func (a *BlogController) contactPage(c *gin.Context) {
	html(c, http.StatusOK, "contact.html", "Contact", nil)
}

// contact reads the four raw form fields without server-side validation
// and relays them by email. A failed relay is an unrecovered fault.
func (a *BlogController) contact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	message := c.PostForm("message")

	if err := a.mailService.SendContactMessage(name, email, phone, message); err != nil {
		serverError(c, err)
		return
	}

	flash(c, "Your message has been sent successfully")
	c.Redirect(http.StatusFound, "/contact")
}
