package api

import (
	"github.com/gin-gonic/gin"

	"github.com/MohitAryal/Database-for-social-media/internal/objects"
)

func (r *Router) likeComment(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	var req userRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	comment, err := r.store.Reactions.LikeComment(c.Request.Context(), id, req.UserID)
	if err != nil {
		return nil, err
	}

	r.track(req.UserID, objects.InteractionLikeComment, comment.PostID)
	return message{Message: "Comment liked"}, nil
}

func (r *Router) unlikeComment(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	var req userRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	if err := r.store.Reactions.RemoveCommentLike(c.Request.Context(), id, req.UserID); err != nil {
		return nil, err
	}
	return message{Message: "Comment unliked"}, nil
}

func (r *Router) likePost(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	var req userRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	if _, err := r.store.Reactions.LikePost(c.Request.Context(), id, req.UserID); err != nil {
		return nil, err
	}

	r.track(req.UserID, objects.InteractionLike, id)
	return message{Message: "Post liked"}, nil
}

func (r *Router) unlikePost(c *gin.Context) (interface{}, error) {
	postID, userID, err := r.bindRemoval(c)
	if err != nil {
		return nil, err
	}
	removed, err := r.store.Reactions.RemovePostLike(c.Request.Context(), postID, userID)
	if err != nil {
		return nil, err
	}

	r.track(userID, objects.InteractionUnlike, removed)
	return message{Message: "Post unliked"}, nil
}

func (r *Router) savePost(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	var req userRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	if _, err := r.store.Reactions.SavePost(c.Request.Context(), id, req.UserID); err != nil {
		return nil, err
	}

	r.track(req.UserID, objects.InteractionSave, id)
	return message{Message: "Post saved"}, nil
}

func (r *Router) unsavePost(c *gin.Context) (interface{}, error) {
	postID, userID, err := r.bindRemoval(c)
	if err != nil {
		return nil, err
	}
	removed, err := r.store.Reactions.RemovePostSave(c.Request.Context(), postID, userID)
	if err != nil {
		return nil, err
	}

	r.track(userID, objects.InteractionUnsave, removed)
	return message{Message: "Post unsaved"}, nil
}

// bindRemoval reads the unlike or unsave request. post_id is optional when
// the store removes by user alone.
func (r *Router) bindRemoval(c *gin.Context) (postID, userID int64, err error) {
	if r.store.Reactions.UserOnlyRemoval() {
		var req userOnlyRemovalRequest
		if err := bind(c, &req); err != nil {
			return 0, 0, err
		}
		return req.PostID, req.UserID, nil
	}
	var req postUserRequest
	if err := bind(c, &req); err != nil {
		return 0, 0, err
	}
	return req.PostID, req.UserID, nil
}
