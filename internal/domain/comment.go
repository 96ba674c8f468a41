package domain

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Create(context.Context, *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	Get(context.Context, *model.GetCommentRequest) (*model.GetCommentResponse, error)
	GetList(context.Context, *model.GetCommentsRequest) (*model.GetCommentsResponse, error)
	GetReplies(context.Context, *model.GetCommentRepliesRequest) (*model.GetCommentRepliesResponse, error)
	Update(context.Context, *model.UpdateCommentRequest) (*model.UpdateCommentResponse, error)
	Delete(context.Context, *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
}

type commentDomain struct {
	commentRepo  repository.CommentRepository
	activityRepo repository.ActivityRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	activityRepo repository.ActivityRepository,
) *commentDomain {
	return &commentDomain{
		commentRepo:  commentRepo,
		activityRepo: activityRepo,
	}
}

func (d *commentDomain) Create(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment body")
	}

	if _, err := d.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity of comment: %v", err)
		return nil, errorx.Unknown
	}

	parentCommentID := sql.NullString{}
	if req.ParentCommentID != nil {
		parent, err := d.commentRepo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found parent comment")
			}

			xcontext.Logger(ctx).Errorf("Cannot get parent comment: %v", err)
			return nil, errorx.Unknown
		}

		// A reply belongs to the same activity as the comment it replies to.
		if parent.ActivityID != req.ActivityID {
			return nil, errorx.New(errorx.BadRequest, "Parent comment belongs to another activity")
		}

		parentCommentID = sql.NullString{Valid: true, String: parent.ID}
	}

	comment := &entity.Comment{
		Base:            entity.Base{ID: uuid.NewString()},
		ActivityID:      req.ActivityID,
		UserID:          xcontext.RequestUserID(ctx),
		Body:            req.Body,
		ParentCommentID: parentCommentID,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateCommentResponse(model.ConvertComment(comment))
	return &resp, nil
}

func (d *commentDomain) Get(
	ctx context.Context, req *model.GetCommentRequest,
) (*model.GetCommentResponse, error) {
	comment, err := d.commentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetCommentResponse(model.ConvertComment(comment))
	return &resp, nil
}

func (d *commentDomain) GetList(
	ctx context.Context, req *model.GetCommentsRequest,
) (*model.GetCommentsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	comments, err := d.commentRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetCommentsResponse{Comments: []model.Comment{}}
	for i := range comments {
		resp.Comments = append(resp.Comments, model.ConvertComment(&comments[i]))
	}

	return resp, nil
}

func (d *commentDomain) GetReplies(
	ctx context.Context, req *model.GetCommentRepliesRequest,
) (*model.GetCommentRepliesResponse, error) {
	if _, err := d.commentRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	replies, err := d.commentRepo.GetReplies(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get replies: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetCommentRepliesResponse{Replies: []model.Comment{}}
	for i := range replies {
		resp.Replies = append(resp.Replies, model.ConvertComment(&replies[i]))
	}

	return resp, nil
}

func (d *commentDomain) Update(
	ctx context.Context, req *model.UpdateCommentRequest,
) (*model.UpdateCommentResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment body")
	}

	comment, err := d.commentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	if comment.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can update this comment")
	}

	if err := d.commentRepo.UpdateByID(ctx, req.ID, map[string]any{"body": req.Body}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update comment: %v", err)
		return nil, errorx.Unknown
	}

	comment, err = d.commentRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment after update: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateCommentResponse(model.ConvertComment(comment))
	return &resp, nil
}

func (d *commentDomain) Delete(
	ctx context.Context, req *model.DeleteCommentRequest,
) (*model.DeleteCommentResponse, error) {
	comment, err := d.commentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	if comment.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete this comment")
	}

	if err := d.commentRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{}, nil
}
