package model

type Follower struct {
	FollowerID string `json:"follower_id"`
	FolloweeID string `json:"followee_id"`
	CreatedAt  string `json:"created_at"`
}

type CreateFollowerRequest struct {
	FolloweeID string `json:"followee_id"`
}

type CreateFollowerResponse Follower

type GetFollowerRequest struct {
	FollowerID string `json:"follower_id"`
	FolloweeID string `json:"followee_id"`
}

type GetFollowerResponse Follower

type GetFollowingRequest struct {
	FollowerID string `json:"follower_id"`
}

type GetFollowingResponse struct {
	Following []Follower `json:"following"`
}

type DeleteFollowerRequest struct {
	FolloweeID string `json:"followee_id"`
}

type DeleteFollowerResponse struct{}
