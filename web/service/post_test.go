package service

import (
	"testing"
	"time"

	"goblog/database"
	"goblog/database/model"

	"github.com/stretchr/testify/assert"
)

func TestPostService(t *testing.T) {
	setup()
	defer teardown()

	users := UserService{}
	author, err := users.Register("Admin", "admin@example.com", "pw")
	assert.NoError(t, err)

	service := PostService{}

	// Test CreatePost
	post, err := service.CreatePost("T", "S", "B", "http://x/y.png", author)
	assert.NoError(t, err)
	assert.Equal(t, time.Now().Format("January 02, 2006"), post.Date)
	assert.Equal(t, author.Id, post.AuthorId)

	// Test ListPosts
	posts, err := service.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "T", posts[0].Title)
	assert.Equal(t, "S", posts[0].Subtitle)
	assert.Equal(t, "Admin", posts[0].Author.Name)

	// Test UpdatePost leaves author and date untouched
	err = service.UpdatePost(post.Id, "T2", "S2", "http://x/z.png", "B2")
	assert.NoError(t, err)
	updated, err := service.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "B2", updated.Body)
	assert.Equal(t, post.Date, updated.Date)
	assert.Equal(t, author.Id, updated.AuthorId)

	err = service.UpdatePost(999, "X", "X", "http://x", "X")
	assert.True(t, database.IsNotFound(err))
}

func TestCommentsAndDelete(t *testing.T) {
	setup()
	defer teardown()

	users := UserService{}
	author, _ := users.Register("Admin", "admin@example.com", "pw")
	reader, _ := users.Register("Reader", "reader@example.com", "pw")

	posts := PostService{}
	post, err := posts.CreatePost("T", "S", "B", "http://x/y.png", author)
	assert.NoError(t, err)

	comments := CommentService{}

	// Test AddComment
	_, err = comments.AddComment(post.Id, reader, "Nice post")
	assert.NoError(t, err)
	got, err := posts.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Len(t, got.Comments, 1)
	assert.Equal(t, "Reader", got.Comments[0].User.Name)

	// Comment on a missing post
	_, err = comments.AddComment(999, reader, "lost")
	assert.True(t, database.IsNotFound(err))

	// Test DeletePost cascades to comments
	err = posts.DeletePost(post.Id)
	assert.NoError(t, err)
	_, err = posts.GetPost(post.Id)
	assert.True(t, database.IsNotFound(err))

	var count int64
	database.GetDB().Model(&model.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// Deleting the same id again reports not found
	err = posts.DeletePost(post.Id)
	assert.True(t, database.IsNotFound(err))
}
