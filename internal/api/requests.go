package api

type createUserRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

type idRequest struct {
	ID int64 `json:"id" form:"id" binding:"required,min=1"`
}

type createPostRequest struct {
	UserID  int64  `json:"user_id" binding:"required,min=1"`
	Content string `json:"content" binding:"required"`
}

type createCommentRequest struct {
	PostID  int64  `json:"post_id" binding:"required,min=1"`
	UserID  int64  `json:"user_id" binding:"required,min=1"`
	Content string `json:"content" binding:"required"`
	ReplyTo *int64 `json:"reply_to" binding:"omitempty,min=1"`
}

type userRequest struct {
	UserID int64 `json:"user_id" form:"user_id" binding:"required,min=1"`
}

type postUserRequest struct {
	PostID int64 `json:"post_id" form:"post_id" binding:"required,min=1"`
	UserID int64 `json:"user_id" form:"user_id" binding:"required,min=1"`
}

// userOnlyRemovalRequest is the unlike and unsave body when the store
// removes by user alone. post_id is accepted but not required.
type userOnlyRemovalRequest struct {
	PostID int64 `json:"post_id" form:"post_id" binding:"omitempty,min=1"`
	UserID int64 `json:"user_id" form:"user_id" binding:"required,min=1"`
}

type createCategoryRequest struct {
	Title string `json:"title" binding:"required,max=15"`
}

type assignCategoriesRequest struct {
	PostID      int64   `json:"post_id" binding:"required,min=1"`
	CategoryIDs []int64 `json:"category_ids" binding:"required,min=1"`
}
