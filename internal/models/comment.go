package models

import (
	"time"
)

// Comment represents a comment on a post. A nil ReplyTo marks a root comment;
// otherwise ReplyTo is the id of a comment on the same post.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    int64     `gorm:"not null;index;column:post_id"`
	UserID    int64     `gorm:"not null;index;column:user_id"`
	Content   string    `gorm:"type:text;not null;column:content"`
	CreatedAt time.Time `gorm:"not null;column:timestamp"`
	ReplyTo   *int64    `gorm:"index;column:reply_to"`

	// Relationships
	Replies []Comment     `gorm:"foreignKey:ReplyTo;constraint:OnDelete:CASCADE"`
	Likes   []CommentLike `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsRoot reports whether the comment is not a reply
func (c *Comment) IsRoot() bool {
	return c.ReplyTo == nil
}
