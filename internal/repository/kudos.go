package repository

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityKudosCount struct {
	ActivityID string
	KudosCount int64
}

type KudosRepository interface {
	Create(ctx context.Context, data *entity.Kudos) error
	GetByID(ctx context.Context, id string) (*entity.Kudos, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Kudos, error)
	GetListByActivityID(ctx context.Context, activityID string) ([]entity.Kudos, error)
	Count(ctx context.Context, activityID, userID string) (int64, error)
	DeleteByID(ctx context.Context, id string) error
	CountByActivity(ctx context.Context) ([]ActivityKudosCount, error)
}

type kudosRepository struct{}

func NewKudosRepository() *kudosRepository {
	return &kudosRepository{}
}

func (r *kudosRepository) Create(ctx context.Context, data *entity.Kudos) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *kudosRepository) GetByID(ctx context.Context, id string) (*entity.Kudos, error) {
	var record entity.Kudos
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *kudosRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Kudos, error) {
	var result []entity.Kudos
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *kudosRepository) GetListByActivityID(ctx context.Context, activityID string) ([]entity.Kudos, error) {
	var result []entity.Kudos
	err := xcontext.DB(ctx).
		Where("activity_id=?", activityID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *kudosRepository) Count(ctx context.Context, activityID, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Kudos{}).
		Where("activity_id=? AND user_id=?", activityID, userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// DeleteByID removes the row for real. A soft-deleted kudos would keep
// occupying the one-per-user unique index and block giving kudos again.
func (r *kudosRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Unscoped().Delete(&entity.Kudos{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *kudosRepository) CountByActivity(ctx context.Context) ([]ActivityKudosCount, error) {
	var result []ActivityKudosCount
	err := xcontext.DB(ctx).Model(&entity.Kudos{}).
		Select("activity_id, COUNT(id) AS kudos_count").
		Group("activity_id").
		Order("kudos_count DESC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
