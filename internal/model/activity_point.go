package model

import "time"

type ActivityPoint struct {
	ID         string     `json:"id"`
	ActivityID string     `json:"activity_id"`
	Lat        float64    `json:"lat"`
	Lon        float64    `json:"lon"`
	RecordedAt *time.Time `json:"recorded_at"`
	Ele        *float64   `json:"ele"`
	Speed      *float64   `json:"speed"`
	Cadence    *int64     `json:"cadence"`
	CreatedAt  string     `json:"created_at"`
}

type CreateActivityPointRequest struct {
	ActivityID string     `json:"activity_id"`
	Lat        float64    `json:"lat"`
	Lon        float64    `json:"lon"`
	RecordedAt *time.Time `json:"recorded_at"`
	Ele        *float64   `json:"ele"`
	Speed      *float64   `json:"speed"`
	Cadence    *int64     `json:"cadence"`
}

type CreateActivityPointResponse ActivityPoint

type GetActivityPointRequest struct {
	ID string `json:"id"`
}

type GetActivityPointResponse ActivityPoint

type GetActivityPointsRequest struct {
	ActivityID string `json:"activity_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetActivityPointsResponse struct {
	Points []ActivityPoint `json:"points"`
}

type UpdateActivityPointRequest struct {
	ID         string     `json:"id"`
	Lat        *float64   `json:"lat"`
	Lon        *float64   `json:"lon"`
	RecordedAt *time.Time `json:"recorded_at"`
	Ele        *float64   `json:"ele"`
	Speed      *float64   `json:"speed"`
	Cadence    *int64     `json:"cadence"`
}

type UpdateActivityPointResponse ActivityPoint

type DeleteActivityPointRequest struct {
	ID string `json:"id"`
}

type DeleteActivityPointResponse struct{}
