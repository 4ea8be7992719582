package api

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MohitAryal/Database-for-social-media/internal/db"
	"github.com/MohitAryal/Database-for-social-media/internal/objects"
)

func (r *Router) createPost(c *gin.Context) (interface{}, error) {
	var req createPostRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	post, err := r.store.Posts.Create(c.Request.Context(), req.UserID, req.Content)
	if err != nil {
		return nil, err
	}

	obj := objects.NewPost(post)
	r.enqueue("cache_post", func(ctx context.Context) error {
		// a concurrent delete may have been queued first
		if _, err := r.store.Posts.GetByID(ctx, obj.ID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil
			}
			return err
		}
		return r.ledger.CachePost(ctx, obj)
	})
	return obj, nil
}

func (r *Router) getPost(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	post, err := r.store.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return objects.NewPost(post), nil
}

func (r *Router) deletePost(c *gin.Context) (interface{}, error) {
	var req idRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	if err := r.store.Posts.Delete(c.Request.Context(), req.ID); err != nil {
		return nil, err
	}

	r.enqueue("delete_cached_post", func(ctx context.Context) error {
		return r.ledger.DeleteCachedPost(ctx, req.ID)
	})
	return message{Message: "Post deleted"}, nil
}

// recentPosts serves the recent posts list from the cache, newest first
func (r *Router) recentPosts(c *gin.Context) (interface{}, error) {
	posts, err := r.ledger.GetRecentCachedPosts(c.Request.Context())
	if err != nil {
		r.cacheReadFailed("get_recent_posts", err)
		return []*objects.Post{}, nil
	}
	return posts, nil
}

func (r *Router) assignCategories(c *gin.Context) (interface{}, error) {
	var req assignCategoriesRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	post, err := r.store.Posts.AssignCategories(c.Request.Context(), req.PostID, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	obj := objects.NewPost(post)
	r.enqueue("refresh_cached_post", func(ctx context.Context) error {
		return r.ledger.RefreshCachedPost(ctx, obj)
	})
	return message{Message: "Categories assigned to post"}, nil
}
