package objects

import (
	"time"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// Comment is the API representation of a comment and its nested replies
type Comment struct {
	ID        int64      `json:"id"`
	PostID    int64      `json:"post_id"`
	UserID    int64      `json:"user_id"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	ReplyTo   *int64     `json:"reply_to"`
	Replies   []*Comment `json:"replies"`
}

// CommentDetails is a comment with its likes and direct replies
type CommentDetails struct {
	Comment
	Likes []Like `json:"likes"`
}

// NewComment builds a comment node with no replies
func NewComment(c *models.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		Timestamp: c.CreatedAt,
		ReplyTo:   c.ReplyTo,
		Replies:   []*Comment{},
	}
}

// NewCommentDetails builds the details view from a comment loaded with its
// likes and direct replies.
func NewCommentDetails(c *models.Comment) *CommentDetails {
	d := &CommentDetails{
		Comment: *NewComment(c),
		Likes:   make([]Like, 0, len(c.Likes)),
	}
	for i := range c.Replies {
		d.Replies = append(d.Replies, NewComment(&c.Replies[i]))
	}
	for _, l := range c.Likes {
		d.Likes = append(d.Likes, Like{
			ID:        l.ID,
			CommentID: l.CommentID,
			UserID:    l.UserID,
			Timestamp: l.CreatedAt,
		})
	}
	return d
}

// CommentList returns the comments as a flat sequence in input order
func CommentList(comments []models.Comment) []*Comment {
	out := make([]*Comment, 0, len(comments))
	for i := range comments {
		out = append(out, NewComment(&comments[i]))
	}
	return out
}

// BuildCommentForest arranges comments of one post into trees. The input is
// expected in creation order; replies keep that order under their parent.
// A reply whose parent is not part of the input is dropped along with its
// own replies.
func BuildCommentForest(comments []models.Comment) []*Comment {
	nodes := make(map[int64]*Comment, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = NewComment(&comments[i])
	}

	roots := make([]*Comment, 0)
	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].IsRoot() {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*node.ReplyTo]; ok && parent != node {
			parent.Replies = append(parent.Replies, node)
		}
	}
	return roots
}

// WalkComments visits every node of the forest depth-first, parents before
// their replies. Returning false from fn stops the walk.
func WalkComments(forest []*Comment, fn func(c *Comment, depth int) bool) {
	var walk func(nodes []*Comment, depth int) bool
	walk = func(nodes []*Comment, depth int) bool {
		for _, n := range nodes {
			if !fn(n, depth) {
				return false
			}
			if !walk(n.Replies, depth+1) {
				return false
			}
		}
		return true
	}
	walk(forest, 0)
}
