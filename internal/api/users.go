package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/MohitAryal/Database-for-social-media/internal/objects"
)

func (r *Router) createUser(c *gin.Context) (interface{}, error) {
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	user, err := r.store.Users.Create(c.Request.Context(), req.Name)
	if err != nil {
		return nil, err
	}
	return objects.NewUser(user), nil
}

func (r *Router) getUser(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	user, err := r.store.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return objects.NewUser(user), nil
}

// deleteUser removes the user and evicts its posts and interactions from
// the cache.
func (r *Router) deleteUser(c *gin.Context) (interface{}, error) {
	var req idRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	postIDs, err := r.store.Users.Delete(c.Request.Context(), req.ID)
	if err != nil {
		return nil, err
	}

	for _, id := range postIDs {
		id := id
		r.enqueue("delete_cached_post", func(ctx context.Context) error {
			return r.ledger.DeleteCachedPost(ctx, id)
		})
	}
	r.enqueue("clear_interactions", func(ctx context.Context) error {
		return r.ledger.ClearUserInteractions(ctx, req.ID)
	})

	return message{Message: "User deleted"}, nil
}

func (r *Router) listUserPosts(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	posts, err := r.store.Posts.ListByUser(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return objects.NewPosts(posts), nil
}

// userInteractions serves the user's recent activity from the cache. Cache
// failures yield an empty list.
func (r *Router) userInteractions(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	interactions, err := r.ledger.GetUserInteractions(c.Request.Context(), id)
	if err != nil {
		r.cacheReadFailed("get_user_interactions", err)
		return []objects.Interaction{}, nil
	}
	return interactions, nil
}
