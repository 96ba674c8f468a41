package repository

import (
	"context"
	"errors"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDistanceTotal struct {
	Username      string
	TotalDistance float64
}

type MonthlyTotal struct {
	Year             int
	Month            int
	TotalDistanceM   float64
	TotalDurationSec float64
	ActiveUsers      int64
}

type UserMonthlyStatsRepository interface {
	Get(ctx context.Context, userID string, year, month int) (*entity.UserMonthlyStats, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.UserMonthlyStats, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.UserMonthlyStats, error)
	Upsert(ctx context.Context, data *entity.UserMonthlyStats) error
	Delete(ctx context.Context, userID string, year, month int) error
	DistanceLeaderboard(ctx context.Context) ([]UserDistanceTotal, error)
	MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error)
}

type userMonthlyStatsRepository struct{}

func NewUserMonthlyStatsRepository() *userMonthlyStatsRepository {
	return &userMonthlyStatsRepository{}
}

func (r *userMonthlyStatsRepository) Get(
	ctx context.Context, userID string, year, month int,
) (*entity.UserMonthlyStats, error) {
	var record entity.UserMonthlyStats
	err := xcontext.DB(ctx).
		Take(&record, "user_id=? AND year=? AND month=?", userID, year, month).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userMonthlyStatsRepository) GetList(ctx context.Context, offset, limit int) ([]entity.UserMonthlyStats, error) {
	var result []entity.UserMonthlyStats
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userMonthlyStatsRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.UserMonthlyStats, error) {
	var result []entity.UserMonthlyStats
	err := xcontext.DB(ctx).
		Order("year, month").
		Find(&result, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Upsert updates the row keyed by (user, year, month), creating it if it does
// not exist yet. Repeating the call with the same key never duplicates.
func (r *userMonthlyStatsRepository) Upsert(ctx context.Context, data *entity.UserMonthlyStats) error {
	tx := xcontext.DB(ctx).Model(&entity.UserMonthlyStats{}).
		Where("user_id=? AND year=? AND month=?", data.UserID, data.Year, data.Month).
		Updates(map[string]any{
			"total_distance_m":   data.TotalDistanceM,
			"total_duration_sec": data.TotalDurationSec,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		if err := xcontext.DB(ctx).Create(data).Error; err != nil {
			// A concurrent writer may have created the row after the update
			// missed; retry the update once in that case.
			if !IsUniqueViolation(err) {
				return err
			}

			retry := xcontext.DB(ctx).Model(&entity.UserMonthlyStats{}).
				Where("user_id=? AND year=? AND month=?", data.UserID, data.Year, data.Month).
				Updates(map[string]any{
					"total_distance_m":   data.TotalDistanceM,
					"total_duration_sec": data.TotalDurationSec,
				})
			if retry.Error != nil {
				return retry.Error
			}
			if retry.RowsAffected == 0 {
				return errors.New("upsert lost the row it conflicted with")
			}
		}
	}

	return nil
}

func (r *userMonthlyStatsRepository) Delete(ctx context.Context, userID string, year, month int) error {
	tx := xcontext.DB(ctx).
		Delete(&entity.UserMonthlyStats{}, "user_id=? AND year=? AND month=?", userID, year, month)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userMonthlyStatsRepository) DistanceLeaderboard(ctx context.Context) ([]UserDistanceTotal, error) {
	var result []UserDistanceTotal
	err := xcontext.DB(ctx).Model(&entity.UserMonthlyStats{}).
		Select("users.name AS username, SUM(total_distance_m) AS total_distance").
		Joins("join users on users.id=user_monthly_stats.user_id").
		Group("users.name").
		Order("total_distance DESC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userMonthlyStatsRepository) MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error) {
	var result []MonthlyTotal
	err := xcontext.DB(ctx).Model(&entity.UserMonthlyStats{}).
		Select("year, month, " +
			"SUM(total_distance_m) AS total_distance_m, " +
			"SUM(total_duration_sec) AS total_duration_sec, " +
			"COUNT(user_id) AS active_users").
		Group("year, month").
		Order("year, month").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
