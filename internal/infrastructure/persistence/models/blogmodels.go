package models

import (
	"time"

	"novita/internal/shared/constants"
)

type CategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Slug        string `gorm:"uniqueIndex;not null;size:120"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

type PostModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:200"`
	Slug        string `gorm:"uniqueIndex;not null;size:220"`
	AuthorID    uint   `gorm:"not null;index"`
	CategoryID  *uint  `gorm:"index"`
	Excerpt     string `gorm:"size:300"`
	Content     string `gorm:"type:longtext;not null"`
	Status      string `gorm:"not null;default:draft;size:20;index"`
	Featured    bool   `gorm:"not null;default:false;index"`
	ViewsCount  int    `gorm:"not null;default:0"`
	LikesCount  int    `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

func (PostModel) TableName() string {
	return constants.TablePosts
}

type CommentModel struct {
	ID        uint   `gorm:"primarykey"`
	PostID    uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	ParentID  *uint  `gorm:"index"`
	Approved  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

// PostLikeModel is the unique (post, user) pair. The composite unique
// index is the arbiter for concurrent toggles.
type PostLikeModel struct {
	ID        uint `gorm:"primarykey"`
	PostID    uint `gorm:"not null;uniqueIndex:idx_post_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_post_user"`
	CreatedAt time.Time
}

func (PostLikeModel) TableName() string {
	return constants.TablePostLikes
}
