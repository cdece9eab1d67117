package service

import (
	"time"

	"goblog/database"
	"goblog/database/model"

	"gorm.io/gorm"
)

// dateLayout is the human-readable publication stamp stored on each post.
const dateLayout = "January 02, 2006"

type PostService struct{}

func (s *PostService) ListPosts() ([]model.BlogPost, error) {
	db := database.GetDB()

	var posts []model.BlogPost
	err := db.Model(model.BlogPost{}).
		Preload("Author").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetPost(id int) (*model.BlogPost, error) {
	db := database.GetDB()

	post := &model.BlogPost{}
	err := db.Model(model.BlogPost{}).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.User").
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost stores a new post stamped with today's date and the given
// author.
func (s *PostService) CreatePost(title, subtitle, body, imgURL string, author *model.User) (*model.BlogPost, error) {
	db := database.GetDB()

	post := &model.BlogPost{
		AuthorId: author.Id,
		Title:    title,
		Subtitle: subtitle,
		Date:     time.Now().Format(dateLayout),
		Body:     body,
		ImgURL:   imgURL,
	}
	if err := db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites title, subtitle, image and body of an existing
// post. Author and date are left untouched.
func (s *PostService) UpdatePost(id int, title, subtitle, imgURL, body string) error {
	db := database.GetDB()

	post := &model.BlogPost{}
	err := db.Model(model.BlogPost{}).
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return err
	}

	return db.Model(post).
		Updates(map[string]any{
			"title":    title,
			"subtitle": subtitle,
			"img_url":  imgURL,
			"body":     body,
		}).
		Error
}

// DeletePost removes a post and its comments in one transaction. Deleting
// an id that does not exist reports gorm's record-not-found error.
func (s *PostService) DeletePost(id int) error {
	db := database.GetDB()

	post := &model.BlogPost{}
	err := db.Model(model.BlogPost{}).
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BlogPost{}, id).Error
	})
}
