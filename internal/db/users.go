package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// Create creates a new unverified user
func (r *UserRepository) Create(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{Name: name}
	if err := r.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	}); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes a user with every post, comment, like and save it owns.
// Replies written by others under the user's comments go with them. The ids
// of the deleted posts are returned so callers can evict derived state.
func (r *UserRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	var postIDs []int64
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.User{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("User not found")
		}

		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Order("id").Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if err := deletePosts(tx, postIDs); err != nil {
			return err
		}

		var authored []int64
		if err := tx.Model(&models.Comment{}).Where("user_id = ?", id).Pluck("id", &authored).Error; err != nil {
			return err
		}
		subtree, err := commentSubtree(tx, authored)
		if err != nil {
			return err
		}
		if err := deleteComments(tx, subtree); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.PostSave{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return postIDs, nil
}
