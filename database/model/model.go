// Package model defines the persisted entities of the blog.
package model

// User is a registered account. The password column only ever holds a
// bcrypt hash.
type User struct {
	Id       int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" form:"name" gorm:"not null"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" form:"-" gorm:"not null"`

	Posts    []BlogPost `json:"-" gorm:"foreignKey:AuthorId"`
	Comments []Comment  `json:"-" gorm:"foreignKey:UserId"`
}

// BlogPost is a published article. Date is the human-readable publication
// stamp ("January 02, 2006"), not a parseable time column.
type BlogPost struct {
	Id       int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	AuthorId int    `json:"-"`
	Author   User   `json:"-" gorm:"foreignKey:AuthorId"`
	Title    string `json:"title" form:"title" gorm:"uniqueIndex;not null"`
	Subtitle string `json:"subtitle" form:"subtitle" gorm:"not null"`
	Date     string `json:"date" gorm:"not null"`
	Body     string `json:"body" form:"body" gorm:"not null"`
	ImgURL   string `json:"imgUrl" form:"img_url" gorm:"not null"`

	Comments []Comment `json:"-" gorm:"foreignKey:PostId;constraint:OnDelete:CASCADE"`
}

// Comment is a reply to a post. Comments are never edited; they disappear
// only when their post is deleted.
type Comment struct {
	Id      int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Comment string `json:"comment" form:"comment" gorm:"not null"`
	UserId  int    `json:"-"`
	User    User   `json:"-" gorm:"foreignKey:UserId"`
	PostId  int    `json:"-"`
}
