package model

type UserMonthlyStats struct {
	UserID           string  `json:"user_id"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalDistanceM   float64 `json:"total_distance_m"`
	TotalDurationSec int     `json:"total_duration_sec"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type GetUserMonthlyStatsRequest struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

type GetUserMonthlyStatsResponse UserMonthlyStats

type GetUserMonthlyStatsListRequest struct {
	UserID string `json:"user_id"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetUserMonthlyStatsListResponse struct {
	Stats []UserMonthlyStats `json:"stats"`
}

type UpsertUserMonthlyStatsRequest struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalDistanceM   float64 `json:"total_distance_m"`
	TotalDurationSec int     `json:"total_duration_sec"`
}

type UpsertUserMonthlyStatsResponse UserMonthlyStats

type DeleteUserMonthlyStatsRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type DeleteUserMonthlyStatsResponse struct{}
