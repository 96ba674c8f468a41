package model

type Comment struct {
	ID              string  `json:"id"`
	ActivityID      string  `json:"activity_id"`
	UserID          string  `json:"user_id"`
	Body            string  `json:"body"`
	ParentCommentID *string `json:"parent_comment_id"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type CreateCommentRequest struct {
	ActivityID      string  `json:"activity_id"`
	Body            string  `json:"body"`
	ParentCommentID *string `json:"parent_comment_id"`
}

type CreateCommentResponse Comment

type GetCommentRequest struct {
	ID string `json:"id"`
}

type GetCommentResponse Comment

type GetCommentsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type GetCommentRepliesRequest struct {
	ID string `json:"id"`
}

type GetCommentRepliesResponse struct {
	Replies []Comment `json:"replies"`
}

type UpdateCommentRequest struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

type UpdateCommentResponse Comment

type DeleteCommentRequest struct {
	ID string `json:"id"`
}

type DeleteCommentResponse struct{}
