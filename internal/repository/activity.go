package repository

import (
	"context"
	"database/sql"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityStatistic struct {
	TotalActivities      int64
	TotalDistanceMeters  sql.NullFloat64
	TotalDurationSeconds sql.NullFloat64
	AverageElevationGain sql.NullFloat64
}

type UserActivityCount struct {
	UserID        string
	ActivityCount int64
}

type ActivityRepository interface {
	Create(ctx context.Context, data *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Activity, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.Activity, error)
	GetAll(ctx context.Context) ([]entity.Activity, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	Statistic(ctx context.Context) (*ActivityStatistic, error)
	CountPerUser(ctx context.Context) ([]UserActivityCount, error)
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, data *entity.Activity) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	var record entity.Activity
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *activityRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) GetAll(ctx context.Context) ([]entity.Activity, error) {
	var result []entity.Activity
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Activity, error) {
	var result []entity.Activity
	if err := xcontext.DB(ctx).Find(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.Activity{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteByID hard-deletes the activity along with its points, comments, and
// kudos in one transaction. A soft delete is an UPDATE, which would skip the
// ON DELETE CASCADE constraints and leave the dependents live.
func (r *activityRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ActivityPoint{}, "activity_id=?", id).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Delete(&entity.Comment{}, "activity_id=?", id).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Delete(&entity.Kudos{}, "activity_id=?", id).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Delete(&entity.Activity{}, "id=?", id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *activityRepository) Statistic(ctx context.Context) (*ActivityStatistic, error) {
	var result ActivityStatistic
	err := xcontext.DB(ctx).Model(&entity.Activity{}).
		Select("COUNT(id) AS total_activities, " +
			"SUM(distance_m) AS total_distance_meters, " +
			"SUM(duration_sec) AS total_duration_seconds, " +
			"AVG(elevation_gain_m) AS average_elevation_gain").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *activityRepository) CountPerUser(ctx context.Context) ([]UserActivityCount, error) {
	var result []UserActivityCount
	err := xcontext.DB(ctx).Model(&entity.Activity{}).
		Select("user_id, COUNT(id) AS activity_count").
		Group("user_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
