package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// Create creates a new post owned by userID
func (r *PostRepository) Create(ctx context.Context, userID int64, content string) (*models.Post, error) {
	post := &models.Post{UserID: userID, Content: content}
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.User{}, userID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("User not found")
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}
	post.Categories = []models.Category{}
	return post, nil
}

// GetByID retrieves a post by ID with its categories
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Categories", orderByID).First(&post, id).Error; err != nil {
		if isNotFound(err) {
			return nil, notFound("Post not found")
		}
		return nil, err
	}
	return &post, nil
}

// ListByUser returns the posts of a user, newest first
func (r *PostRepository) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("Categories", orderByID).
		Where("user_id = ?", userID).
		Scopes(newestFirst).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post with its comments, likes and saves. Categories are
// detached, never deleted.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	return r.transaction(ctx, func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Post{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Post not found")
		}
		return deletePosts(tx, []int64{id})
	})
}

// AssignCategories replaces the category set of a post. Ids that do not
// resolve are ignored as long as at least one does.
func (r *PostRepository) AssignCategories(ctx context.Context, postID int64, categoryIDs []int64) (*models.Post, error) {
	var post models.Post
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&post, postID).Error; err != nil {
			if isNotFound(err) {
				return notFound("Post not found")
			}
			return err
		}

		var categories []models.Category
		if err := tx.Where("id IN ?", categoryIDs).Order("id").Find(&categories).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return notFound("Categories not found")
		}

		if err := tx.Model(&post).Association("Categories").Replace(categories); err != nil {
			return err
		}
		post.Categories = categories
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
