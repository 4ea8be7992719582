package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// Create adds a comment to a post. A non-nil replyTo must name a comment of
// the same post.
func (r *CommentRepository) Create(ctx context.Context, postID, userID int64, content string, replyTo *int64) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
		ReplyTo: replyTo,
	}
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		userOK, err := exists(tx, &models.User{}, userID)
		if err != nil {
			return err
		}
		postOK, err := exists(tx, &models.Post{}, postID)
		if err != nil {
			return err
		}
		if !userOK || !postOK {
			return notFound("User or Post not found")
		}

		if replyTo != nil {
			var parent models.Comment
			if err := tx.Select("id", "post_id").First(&parent, *replyTo).Error; err != nil {
				if isNotFound(err) {
					return invalidReference("Parent comment not found")
				}
				return err
			}
			if parent.PostID != postID {
				return invalidReference("Parent comment belongs to another post")
			}
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost returns the comments of a post in creation order
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Scopes(oldestFirst).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetDetails retrieves a comment with its likes and direct replies
func (r *CommentRepository) GetDetails(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Likes", orderByID).
		Preload("Replies", oldestFirst).
		First(&comment, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment, every reply below it at any depth, and the likes
// on all of them. It returns the number of comments removed.
func (r *CommentRepository) Delete(ctx context.Context, id int64) (int, error) {
	var removed int
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Comment{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Comment not found")
		}
		subtree, err := commentSubtree(tx, []int64{id})
		if err != nil {
			return err
		}
		removed = len(subtree)
		return deleteComments(tx, subtree)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
