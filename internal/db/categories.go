package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

// CategoryRepository provides category-related database operations
type CategoryRepository struct {
	*Repository
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(repo *Repository) *CategoryRepository {
	return &CategoryRepository{Repository: repo}
}

// Create creates a category with a unique title
func (r *CategoryRepository) Create(ctx context.Context, title string) (*models.Category, error) {
	category := &models.Category{Title: title}
	if err := r.transaction(ctx, func(tx *gorm.DB) error {
		return insertUnique(tx, category, "Category already exists")
	}); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories ordered by title
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("title").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
