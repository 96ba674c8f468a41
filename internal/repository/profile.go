package repository

import (
	"context"
	"database/sql"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileStatistic struct {
	TotalProfiles   int64
	AverageAge      sql.NullFloat64
	AverageWeightKg sql.NullFloat64
	AverageHeightCm sql.NullFloat64
}

// ProfileRepository keys every lookup by the owning user id because a profile
// shares identity with its user.
type ProfileRepository interface {
	Create(ctx context.Context, data *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Profile, error)
	GetAll(ctx context.Context) ([]entity.Profile, error)
	UpdateByUserID(ctx context.Context, userID string, updateMap map[string]any) error
	DeleteByUserID(ctx context.Context, userID string) error
	Statistic(ctx context.Context) (*ProfileStatistic, error)
}

type profileRepository struct{}

func NewProfileRepository() *profileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(ctx context.Context, data *entity.Profile) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var record entity.Profile
	if err := xcontext.DB(ctx).Take(&record, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *profileRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Profile, error) {
	var result []entity.Profile
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]entity.Profile, error) {
	var result []entity.Profile
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *profileRepository) UpdateByUserID(ctx context.Context, userID string, updateMap map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.Profile{}).Where("user_id=?", userID).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Profile{}, "user_id=?", userID)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *profileRepository) Statistic(ctx context.Context) (*ProfileStatistic, error) {
	var result ProfileStatistic
	err := xcontext.DB(ctx).Model(&entity.Profile{}).
		Select("COUNT(user_id) AS total_profiles, " +
			"AVG(age) AS average_age, " +
			"AVG(weight_kg) AS average_weight_kg, " +
			"AVG(height_cm) AS average_height_cm").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
