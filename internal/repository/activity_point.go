package repository

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityPointRepository interface {
	Create(ctx context.Context, data *entity.ActivityPoint) error
	GetByID(ctx context.Context, id int64) (*entity.ActivityPoint, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.ActivityPoint, error)
	GetListByActivityID(ctx context.Context, activityID string) ([]entity.ActivityPoint, error)
	UpdateByID(ctx context.Context, id int64, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id int64) error
}

type activityPointRepository struct{}

func NewActivityPointRepository() *activityPointRepository {
	return &activityPointRepository{}
}

func (r *activityPointRepository) Create(ctx context.Context, data *entity.ActivityPoint) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *activityPointRepository) GetByID(ctx context.Context, id int64) (*entity.ActivityPoint, error) {
	var record entity.ActivityPoint
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *activityPointRepository) GetList(ctx context.Context, offset, limit int) ([]entity.ActivityPoint, error) {
	var result []entity.ActivityPoint
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityPointRepository) GetListByActivityID(ctx context.Context, activityID string) ([]entity.ActivityPoint, error) {
	var result []entity.ActivityPoint
	err := xcontext.DB(ctx).Order("id").Find(&result, "activity_id=?", activityID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityPointRepository) UpdateByID(ctx context.Context, id int64, updateMap map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.ActivityPoint{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *activityPointRepository) DeleteByID(ctx context.Context, id int64) error {
	tx := xcontext.DB(ctx).Delete(&entity.ActivityPoint{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
