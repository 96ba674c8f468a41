package repository

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FolloweeFollowerCount struct {
	FolloweeID    string
	FollowerCount int64
}

// FollowerRepository works on the composite (follower, followee) key; a
// follow edge is never updated, only created and deleted.
type FollowerRepository interface {
	Create(ctx context.Context, data *entity.Follower) error
	Get(ctx context.Context, followerID, followeeID string) (*entity.Follower, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Follower, error)
	GetListByFollowerID(ctx context.Context, followerID string) ([]entity.Follower, error)
	Delete(ctx context.Context, followerID, followeeID string) error
	TopFollowees(ctx context.Context, limit int) ([]FolloweeFollowerCount, error)
	CountPerFollowee(ctx context.Context) ([]FolloweeFollowerCount, error)
}

type followerRepository struct{}

func NewFollowerRepository() *followerRepository {
	return &followerRepository{}
}

func (r *followerRepository) Create(ctx context.Context, data *entity.Follower) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *followerRepository) Get(ctx context.Context, followerID, followeeID string) (*entity.Follower, error) {
	var record entity.Follower
	err := xcontext.DB(ctx).
		Take(&record, "follower_id=? AND followee_id=?", followerID, followeeID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *followerRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Follower, error) {
	var result []entity.Follower
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) GetListByFollowerID(ctx context.Context, followerID string) ([]entity.Follower, error) {
	var result []entity.Follower
	if err := xcontext.DB(ctx).Find(&result, "follower_id=?", followerID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	tx := xcontext.DB(ctx).
		Delete(&entity.Follower{}, "follower_id=? AND followee_id=?", followerID, followeeID)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *followerRepository) TopFollowees(ctx context.Context, limit int) ([]FolloweeFollowerCount, error) {
	var result []FolloweeFollowerCount
	err := xcontext.DB(ctx).Model(&entity.Follower{}).
		Select("followee_id, COUNT(follower_id) AS follower_count").
		Group("followee_id").
		Order("follower_count DESC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) CountPerFollowee(ctx context.Context) ([]FolloweeFollowerCount, error) {
	var result []FolloweeFollowerCount
	err := xcontext.DB(ctx).Model(&entity.Follower{}).
		Select("followee_id, COUNT(follower_id) AS follower_count").
		Group("followee_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
