package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MohitAryal/Database-for-social-media/internal/objects"
)

func (r *Router) createComment(c *gin.Context) (interface{}, error) {
	var req createCommentRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	comment, err := r.store.Comments.Create(c.Request.Context(), req.PostID, req.UserID, req.Content, req.ReplyTo)
	if err != nil {
		return nil, err
	}

	r.track(req.UserID, objects.InteractionComment, req.PostID)
	return objects.NewComment(comment), nil
}

// listComments returns the comments of a post as a forest of replies, or
// as a flat list with nested=false.
func (r *Router) listComments(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	nested := true
	if v, ok := c.GetQuery("nested"); ok {
		var ok bool
		if nested, ok = parseFlag(v); !ok {
			return nil, NewError(http.StatusBadRequest, "Invalid nested flag")
		}
	}

	comments, err := r.store.Comments.ListByPost(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if nested {
		return objects.BuildCommentForest(comments), nil
	}
	return objects.CommentList(comments), nil
}

func (r *Router) commentDetails(c *gin.Context) (interface{}, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	comment, err := r.store.Comments.GetDetails(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return objects.NewCommentDetails(comment), nil
}

type deleteCommentResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

func (r *Router) deleteComment(c *gin.Context) (interface{}, error) {
	var req idRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}
	removed, err := r.store.Comments.Delete(c.Request.Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return deleteCommentResponse{Message: "Comment deleted", Removed: removed}, nil
}

// parseFlag reads a boolean query value. It accepts 1/0, true/false, t/f,
// yes/no, y/n and on/off in any case.
func parseFlag(v string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	}
	return false, false
}
