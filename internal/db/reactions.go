package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// ReactionRepository provides like and save operations
type ReactionRepository struct {
	*Repository
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(repo *Repository) *ReactionRepository {
	return &ReactionRepository{Repository: repo}
}

// LikeComment records userID liking a comment and returns the comment
func (r *ReactionRepository) LikeComment(ctx context.Context, commentID, userID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&comment, commentID).Error; err != nil {
			if isNotFound(err) {
				return notFound("Comment not found")
			}
			return err
		}
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		return insertUnique(tx, &models.CommentLike{CommentID: commentID, UserID: userID}, "Already liked")
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// LikePost records userID liking a post
func (r *ReactionRepository) LikePost(ctx context.Context, postID, userID int64) (*models.PostLike, error) {
	like := &models.PostLike{PostID: postID, UserID: userID}
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		if err := requirePost(tx, postID); err != nil {
			return err
		}
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		return insertUnique(tx, like, "Already liked")
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

// SavePost records userID saving a post
func (r *ReactionRepository) SavePost(ctx context.Context, postID, userID int64) (*models.PostSave, error) {
	save := &models.PostSave{PostID: postID, UserID: userID}
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		if err := requirePost(tx, postID); err != nil {
			return err
		}
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		return insertUnique(tx, save, "Already saved")
	})
	if err != nil {
		return nil, err
	}
	return save, nil
}

// UserOnlyRemoval reports whether unlike and unsave ignore the post and
// remove the first row of the user.
func (r *ReactionRepository) UserOnlyRemoval() bool {
	return r.opts.LegacyUserOnlyRemoval
}

// RemovePostLike deletes the like of userID on postID and returns the id of
// the post the removed like belonged to
func (r *ReactionRepository) RemovePostLike(ctx context.Context, postID, userID int64) (int64, error) {
	return r.removeOne(ctx, &models.PostLike{}, "post_id", postID, userID, r.opts.LegacyUserOnlyRemoval, "Like not found")
}

// RemovePostSave deletes the save of userID on postID and returns the id of
// the post the removed save belonged to
func (r *ReactionRepository) RemovePostSave(ctx context.Context, postID, userID int64) (int64, error) {
	return r.removeOne(ctx, &models.PostSave{}, "post_id", postID, userID, r.opts.LegacyUserOnlyRemoval, "Save not found")
}

// RemoveCommentLike deletes the like of userID on commentID
func (r *ReactionRepository) RemoveCommentLike(ctx context.Context, commentID, userID int64) error {
	_, err := r.removeOne(ctx, &models.CommentLike{}, "comment_id", commentID, userID, false, "Like not found")
	return err
}

// removedRow identifies a reaction row and its target
type removedRow struct {
	ID     int64
	Target int64
}

// removeOne deletes the first row of model matching (targetColumn, userID)
// and returns the target of the deleted row. With userOnly set the target
// is ignored.
func (r *ReactionRepository) removeOne(ctx context.Context, model interface{}, targetColumn string, targetID, userID int64, userOnly bool, msg string) (int64, error) {
	var row removedRow
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		q := tx.Model(model).Where("user_id = ?", userID)
		if !userOnly {
			q = q.Where(targetColumn+" = ?", targetID)
		}
		var rows []removedRow
		if err := q.Select("id, " + targetColumn + " AS target").Order("id").Limit(1).Scan(&rows).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return notFound(msg)
		}
		row = rows[0]
		return tx.Where("id = ?", row.ID).Delete(model).Error
	})
	if err != nil {
		return 0, err
	}
	return row.Target, nil
}

func requireUser(tx *gorm.DB, id int64) error {
	ok, err := exists(tx, &models.User{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("User not found")
	}
	return nil
}

func requirePost(tx *gorm.DB, id int64) error {
	ok, err := exists(tx, &models.Post{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Post not found")
	}
	return nil
}
