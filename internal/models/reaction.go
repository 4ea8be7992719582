package models

import (
	"time"
)

// CommentLike records a user liking a comment. At most one row exists per
// (comment, user) pair.
type CommentLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	CommentID int64     `gorm:"not null;uniqueIndex:unique_comment_like;column:comment_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:unique_comment_like;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:timestamp"`
}

// TableName specifies the table name for CommentLike
func (CommentLike) TableName() string {
	return "comment_likes"
}

// PostLike records a user liking a post. At most one row exists per
// (post, user) pair.
type PostLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    int64     `gorm:"not null;uniqueIndex:unique_post_like;column:post_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:unique_post_like;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:timestamp"`
}

// TableName specifies the table name for PostLike
func (PostLike) TableName() string {
	return "post_likes"
}

// PostSave records a user saving a post. At most one row exists per
// (post, user) pair.
type PostSave struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    int64     `gorm:"not null;uniqueIndex:unique_post_save;column:post_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:unique_post_save;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:timestamp"`
}

// TableName specifies the table name for PostSave
func (PostSave) TableName() string {
	return "post_saves"
}
