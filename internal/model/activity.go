package model

import "time"

type Activity struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Type           string     `json:"type"`
	DurationSec    float64    `json:"duration_sec"`
	DistanceM      float64    `json:"distance_m"`
	ElevationGainM int        `json:"elevation_gain_m"`
	Height         int        `json:"height"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

type CreateActivityRequest struct {
	Type           string     `json:"type"`
	DurationSec    float64    `json:"duration_sec"`
	DistanceM      float64    `json:"distance_m"`
	ElevationGainM int        `json:"elevation_gain_m"`
	Height         int        `json:"height"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
}

type CreateActivityResponse Activity

type GetActivityRequest struct {
	ID string `json:"id"`
}

type GetActivityResponse Activity

type GetActivitiesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

type UpdateActivityRequest struct {
	ID             string     `json:"id"`
	Type           *string    `json:"type"`
	DurationSec    *float64   `json:"duration_sec"`
	DistanceM      *float64   `json:"distance_m"`
	ElevationGainM *int       `json:"elevation_gain_m"`
	Height         *int       `json:"height"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
}

type UpdateActivityResponse Activity

type DeleteActivityRequest struct {
	ID string `json:"id"`
}

type DeleteActivityResponse struct{}
