package model

type Kudos struct {
	ID         string `json:"id"`
	ActivityID string `json:"activity_id"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

type CreateKudosRequest struct {
	ActivityID string `json:"activity_id"`
}

type CreateKudosResponse Kudos

type GetKudosRequest struct {
	ID string `json:"id"`
}

type GetKudosResponse Kudos

type GetKudosListRequest struct {
	ActivityID string `json:"activity_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetKudosListResponse struct {
	Kudos []Kudos `json:"kudos"`
}

type DeleteKudosRequest struct {
	ID string `json:"id"`
}

type DeleteKudosResponse struct{}
