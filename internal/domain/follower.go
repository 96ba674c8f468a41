package domain

import (
	"context"
	"errors"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowerDomain interface {
	Create(context.Context, *model.CreateFollowerRequest) (*model.CreateFollowerResponse, error)
	Get(context.Context, *model.GetFollowerRequest) (*model.GetFollowerResponse, error)
	GetFollowing(context.Context, *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
	Delete(context.Context, *model.DeleteFollowerRequest) (*model.DeleteFollowerResponse, error)
}

type followerDomain struct {
	followerRepo repository.FollowerRepository
	userRepo     repository.UserRepository
}

func NewFollowerDomain(
	followerRepo repository.FollowerRepository,
	userRepo repository.UserRepository,
) *followerDomain {
	return &followerDomain{
		followerRepo: followerRepo,
		userRepo:     userRepo,
	}
}

func (d *followerDomain) Create(
	ctx context.Context, req *model.CreateFollowerRequest,
) (*model.CreateFollowerResponse, error) {
	followerID := xcontext.RequestUserID(ctx)
	if req.FolloweeID == followerID {
		return nil, errorx.New(errorx.BadRequest, "Cannot follow yourself")
	}

	if _, err := d.userRepo.GetByID(ctx, req.FolloweeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get followee: %v", err)
		return nil, errorx.Unknown
	}

	follower := &entity.Follower{
		FollowerID: followerID,
		FolloweeID: req.FolloweeID,
	}

	if err := d.followerRepo.Create(ctx, follower); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already following this user")
		}

		xcontext.Logger(ctx).Errorf("Cannot create follower: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateFollowerResponse(model.ConvertFollower(follower))
	return &resp, nil
}

func (d *followerDomain) Get(
	ctx context.Context, req *model.GetFollowerRequest,
) (*model.GetFollowerResponse, error) {
	follower, err := d.followerRepo.Get(ctx, req.FollowerID, req.FolloweeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found follower")
		}

		xcontext.Logger(ctx).Errorf("Cannot get follower: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetFollowerResponse(model.ConvertFollower(follower))
	return &resp, nil
}

func (d *followerDomain) GetFollowing(
	ctx context.Context, req *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	followerID := req.FollowerID
	if followerID == "" {
		followerID = xcontext.RequestUserID(ctx)
	}

	following, err := d.followerRepo.GetListByFollowerID(ctx, followerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following list: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetFollowingResponse{Following: []model.Follower{}}
	for i := range following {
		resp.Following = append(resp.Following, model.ConvertFollower(&following[i]))
	}

	return resp, nil
}

func (d *followerDomain) Delete(
	ctx context.Context, req *model.DeleteFollowerRequest,
) (*model.DeleteFollowerResponse, error) {
	followerID := xcontext.RequestUserID(ctx)
	if err := d.followerRepo.Delete(ctx, followerID, req.FolloweeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found follower")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete follower: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteFollowerResponse{}, nil
}
