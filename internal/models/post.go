package models

import (
	"time"
)

// Post represents a user's post
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    int64     `gorm:"not null;index;column:user_id"`
	Content   string    `gorm:"type:text;not null;column:content"`
	CreatedAt time.Time `gorm:"not null;column:timestamp"`

	// Relationships
	Comments   []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Likes      []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Saves      []PostSave `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Categories []Category `gorm:"many2many:post_category;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostCategoryTable is the association table between posts and categories
const PostCategoryTable = "post_category"
