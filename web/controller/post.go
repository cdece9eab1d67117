package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"goblog/config"
	"goblog/database"
	"goblog/web/middleware"
	"goblog/web/service"

	"github.com/gin-gonic/gin"
)

// PostForm is the authoring/editing submission for a blog post.
type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

// PostController handles post authoring, editing and deletion. All of its
// routes sit behind the admin guard.
type PostController struct {
	BaseController

	postService service.PostService
}

func NewPostController(g *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	admin := g.Group("", middleware.AdminRequired(config.GetAdminUserId()))

	admin.GET("/new-post", a.newPostPage)
	admin.POST("/new-post", a.createPost)
	admin.GET("/edit-post/:id", a.editPostPage)
	admin.POST("/edit-post/:id", a.updatePost)
	admin.GET("/delete/:id", a.deletePost)
}

func (a *PostController) newPostPage(c *gin.Context) {
	html(c, http.StatusOK, "make-post.html", "New Post", gin.H{"form": PostForm{}})
}

func (a *PostController) createPost(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, http.StatusOK, "make-post.html", "New Post", gin.H{"form": form, "errors": fieldErrors(err)})
		return
	}

	if _, err := a.postService.CreatePost(form.Title, form.Subtitle, form.Body, form.ImgURL, a.currentUser(c)); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (a *PostController) editPostPage(c *gin.Context) {
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

	form := PostForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		ImgURL:   post.ImgURL,
		Body:     post.Body,
	}
	html(c, http.StatusOK, "make-post.html", "Edit Post", gin.H{"form": form, "is_edit": true, "post_id": id})
}

func (a *PostController) updatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, http.StatusOK, "make-post.html", "Edit Post", gin.H{"form": form, "is_edit": true, "post_id": id, "errors": fieldErrors(err)})
		return
	}

	err = a.postService.UpdatePost(id, form.Title, form.Subtitle, form.ImgURL, form.Body)
	if database.IsNotFound(err) {
		notFound(c)
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

func (a *PostController) deletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	err = a.postService.DeletePost(id)
	if database.IsNotFound(err) {
		notFound(c)
		return
	} else if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
