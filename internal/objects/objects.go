package objects

import (
	"time"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// User is the API representation of a user
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsVerified int    `json:"is_verified"`
}

// Category is the API representation of a category
type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Post is the API representation of a post. It is also the body stored in
// the post cache.
type Post struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Content    string     `json:"content"`
	Timestamp  time.Time  `json:"timestamp"`
	Categories []Category `json:"categories"`
}

// Like is a like on a comment
type Like struct {
	ID        int64     `json:"id"`
	CommentID int64     `json:"comment_id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Interaction is one entry of a user's recent activity
type Interaction struct {
	Type      string    `json:"type"`
	PostID    int64     `json:"post_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Interaction types
const (
	InteractionLike        = "like"
	InteractionUnlike      = "unlike"
	InteractionSave        = "save"
	InteractionUnsave      = "unsave"
	InteractionComment     = "comment"
	InteractionLikeComment = "like_comment"
)

// NewUser builds the API object for u
func NewUser(u *models.User) *User {
	return &User{ID: u.ID, Name: u.Name, IsVerified: u.IsVerified}
}

// NewCategory builds the API object for c
func NewCategory(c *models.Category) Category {
	return Category{ID: c.ID, Title: c.Title}
}

// NewCategories converts a category list, never returning nil
func NewCategories(cs []models.Category) []Category {
	out := make([]Category, 0, len(cs))
	for i := range cs {
		out = append(out, NewCategory(&cs[i]))
	}
	return out
}

// NewPost builds the API object for p
func NewPost(p *models.Post) *Post {
	return &Post{
		ID:         p.ID,
		UserID:     p.UserID,
		Content:    p.Content,
		Timestamp:  p.CreatedAt,
		Categories: NewCategories(p.Categories),
	}
}

// NewPosts converts a post list, never returning nil
func NewPosts(ps []models.Post) []*Post {
	out := make([]*Post, 0, len(ps))
	for i := range ps {
		out = append(out, NewPost(&ps[i]))
	}
	return out
}
