package model

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/stridelab/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

func nullInt(i sql.NullInt64) *int64 {
	if !i.Valid {
		return nil
	}
	return &i.Int64
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt: user.UpdatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertProfile(profile *entity.Profile) Profile {
	if profile == nil {
		return Profile{}
	}

	return Profile{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		City:        profile.City,
		Country:     profile.Country,
		Gender:      nullString(profile.Gender),
		WeightKg:    nullFloat(profile.WeightKg),
		HeightCm:    nullFloat(profile.HeightCm),
		Age:         nullInt(profile.Age),
		Bio:         profile.Bio,
		CreatedAt:   profile.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt:   profile.UpdatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertActivity(activity *entity.Activity) Activity {
	if activity == nil {
		return Activity{}
	}

	return Activity{
		ID:             activity.ID,
		UserID:         activity.UserID,
		Type:           string(activity.Type),
		DurationSec:    activity.DurationSec,
		DistanceM:      activity.DistanceM,
		ElevationGainM: activity.ElevationGainM,
		Height:         activity.Height,
		StartTime:      nullTime(activity.StartTime),
		EndTime:        nullTime(activity.EndTime),
		CreatedAt:      activity.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt:      activity.UpdatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertActivityPoint(point *entity.ActivityPoint) ActivityPoint {
	if point == nil {
		return ActivityPoint{}
	}

	return ActivityPoint{
		ID:         strconv.FormatInt(point.ID, 10),
		ActivityID: point.ActivityID,
		Lat:        point.Lat,
		Lon:        point.Lon,
		RecordedAt: nullTime(point.RecordedAt),
		Ele:        nullFloat(point.Ele),
		Speed:      nullFloat(point.Speed),
		Cadence:    nullInt(point.Cadence),
		CreatedAt:  point.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertComment(comment *entity.Comment) Comment {
	if comment == nil {
		return Comment{}
	}

	return Comment{
		ID:              comment.ID,
		ActivityID:      comment.ActivityID,
		UserID:          comment.UserID,
		Body:            comment.Body,
		ParentCommentID: nullString(comment.ParentCommentID),
		CreatedAt:       comment.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt:       comment.UpdatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertKudos(kudos *entity.Kudos) Kudos {
	if kudos == nil {
		return Kudos{}
	}

	return Kudos{
		ID:         kudos.ID,
		ActivityID: kudos.ActivityID,
		UserID:     kudos.UserID,
		CreatedAt:  kudos.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertFollower(follower *entity.Follower) Follower {
	if follower == nil {
		return Follower{}
	}

	return Follower{
		FollowerID: follower.FollowerID,
		FolloweeID: follower.FolloweeID,
		CreatedAt:  follower.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertUserMonthlyStats(stats *entity.UserMonthlyStats) UserMonthlyStats {
	if stats == nil {
		return UserMonthlyStats{}
	}

	return UserMonthlyStats{
		UserID:           stats.UserID,
		Year:             stats.Year,
		Month:            stats.Month,
		TotalDistanceM:   stats.TotalDistanceM,
		TotalDurationSec: stats.TotalDurationSec,
		CreatedAt:        stats.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt:        stats.UpdatedAt.Format(DefaultTimeLayout),
	}
}
