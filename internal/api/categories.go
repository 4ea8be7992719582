package api

import (
	"github.com/gin-gonic/gin"

	"github.com/MohitAryal/Database-for-social-media/internal/objects"
)

func (r *Router) createCategory(c *gin.Context) (interface{}, error) {
	var req createCategoryRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	category, err := r.store.Categories.Create(c.Request.Context(), req.Title)
	if err != nil {
		return nil, err
	}
	return objects.NewCategory(category), nil
}

func (r *Router) listCategories(c *gin.Context) (interface{}, error) {
	categories, err := r.store.Categories.List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return objects.NewCategories(categories), nil
}
