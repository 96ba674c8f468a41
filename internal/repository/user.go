package repository

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserStatistic struct {
	TotalUsers        int64
	UsersWithProfiles int64
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	Statistic(ctx context.Context) (*UserStatistic, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetList(ctx context.Context, offset, limit int) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteByID hard-deletes the user and everything hanging off it in one
// transaction. Soft-deleting would keep the unique name occupied forever and
// leave activities, comments, and kudos live under a gone user.
func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var activityIDs []string
		err := tx.Model(&entity.Activity{}).Where("user_id=?", id).Pluck("id", &activityIDs).Error
		if err != nil {
			return err
		}

		if len(activityIDs) > 0 {
			if err := tx.Delete(&entity.ActivityPoint{}, "activity_id IN ?", activityIDs).Error; err != nil {
				return err
			}

			if err := tx.Unscoped().Delete(&entity.Comment{}, "activity_id IN ?", activityIDs).Error; err != nil {
				return err
			}

			if err := tx.Unscoped().Delete(&entity.Kudos{}, "activity_id IN ?", activityIDs).Error; err != nil {
				return err
			}

			if err := tx.Unscoped().Delete(&entity.Activity{}, "user_id=?", id).Error; err != nil {
				return err
			}
		}

		// Comments the user left on other activities, then the reply
		// subtrees rooted at them, one level per round.
		var commentIDs []string
		err = tx.Model(&entity.Comment{}).Where("user_id=?", id).Pluck("id", &commentIDs).Error
		if err != nil {
			return err
		}

		for len(commentIDs) > 0 {
			var childIDs []string
			err := tx.Model(&entity.Comment{}).
				Where("parent_comment_id IN ?", commentIDs).
				Pluck("id", &childIDs).Error
			if err != nil {
				return err
			}

			if err := tx.Unscoped().Delete(&entity.Comment{}, "id IN ?", commentIDs).Error; err != nil {
				return err
			}

			commentIDs = childIDs
		}

		if err := tx.Unscoped().Delete(&entity.Kudos{}, "user_id=?", id).Error; err != nil {
			return err
		}

		err = tx.Delete(&entity.Follower{}, "follower_id=? OR followee_id=?", id, id).Error
		if err != nil {
			return err
		}

		if err := tx.Delete(&entity.Profile{}, "user_id=?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.UserMonthlyStats{}, "user_id=?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.RefreshToken{}, "user_id=?", id).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Delete(&entity.User{}, "id=?", id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *userRepository) Statistic(ctx context.Context) (*UserStatistic, error) {
	var result UserStatistic
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&result.TotalUsers).Error; err != nil {
		return nil, err
	}

	err := xcontext.DB(ctx).Model(&entity.Profile{}).Count(&result.UsersWithProfiles).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
