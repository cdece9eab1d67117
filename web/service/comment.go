package service

import (
	"goblog/database"
	"goblog/database/model"
)

type CommentService struct{}

// AddComment attaches a comment by an authenticated user to an existing
// post. The post must exist; a missing post id reports record-not-found.
func (s *CommentService) AddComment(postId int, user *model.User, text string) (*model.Comment, error) {
	db := database.GetDB()

	err := db.Model(model.BlogPost{}).
		Where("id = ?", postId).
		First(&model.BlogPost{}).
		Error
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Comment: text,
		UserId:  user.Id,
		PostId:  postId,
	}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
