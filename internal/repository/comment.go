package repository

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityCommentCount struct {
	ActivityID   string
	CommentCount int64
}

type CommentRepository interface {
	Create(ctx context.Context, data *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Comment, error)
	GetReplies(ctx context.Context, parentCommentID string) ([]entity.Comment, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	CountByActivity(ctx context.Context) ([]ActivityCommentCount, error)
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, data *entity.Comment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var record entity.Comment
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *commentRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Comment, error) {
	var result []entity.Comment
	err := xcontext.DB(ctx).Offset(offset).Limit(limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetReplies returns the direct children of a comment. Walking a full thread
// is iterative from the root, one level per call.
func (r *commentRepository) GetReplies(ctx context.Context, parentCommentID string) ([]entity.Comment, error) {
	var result []entity.Comment
	err := xcontext.DB(ctx).
		Order("created_at").
		Find(&result, "parent_comment_id=?", parentCommentID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.Comment{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteByID hard-deletes the comment and its reply subtree, one level per
// round. Soft-deleting would leave the replies live under a gone parent.
func (r *commentRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Delete(&entity.Comment{}, "id=?", id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		parentIDs := []string{id}
		for len(parentIDs) > 0 {
			var childIDs []string
			err := tx.Model(&entity.Comment{}).
				Where("parent_comment_id IN ?", parentIDs).
				Pluck("id", &childIDs).Error
			if err != nil {
				return err
			}

			if len(childIDs) > 0 {
				if err := tx.Unscoped().Delete(&entity.Comment{}, "id IN ?", childIDs).Error; err != nil {
					return err
				}
			}

			parentIDs = childIDs
		}

		return nil
	})
}

func (r *commentRepository) CountByActivity(ctx context.Context) ([]ActivityCommentCount, error) {
	var result []ActivityCommentCount
	err := xcontext.DB(ctx).Model(&entity.Comment{}).
		Select("activity_id, COUNT(id) AS comment_count").
		Group("activity_id").
		Order("comment_count DESC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
