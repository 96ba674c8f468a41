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

type UserStatsDomain interface {
	Get(context.Context, *model.GetUserMonthlyStatsRequest) (*model.GetUserMonthlyStatsResponse, error)
	GetList(context.Context, *model.GetUserMonthlyStatsListRequest) (*model.GetUserMonthlyStatsListResponse, error)
	Upsert(context.Context, *model.UpsertUserMonthlyStatsRequest) (*model.UpsertUserMonthlyStatsResponse, error)
	Delete(context.Context, *model.DeleteUserMonthlyStatsRequest) (*model.DeleteUserMonthlyStatsResponse, error)
}

type userStatsDomain struct {
	statsRepo repository.UserMonthlyStatsRepository
}

func NewUserStatsDomain(statsRepo repository.UserMonthlyStatsRepository) *userStatsDomain {
	return &userStatsDomain{statsRepo: statsRepo}
}

func validateStatsPeriod(year, month int) error {
	if year < 1 {
		return errorx.New(errorx.BadRequest, "Invalid year")
	}

	if month < 1 || month > 12 {
		return errorx.New(errorx.BadRequest, "Month must be in [1, 12]")
	}

	return nil
}

func (d *userStatsDomain) Get(
	ctx context.Context, req *model.GetUserMonthlyStatsRequest,
) (*model.GetUserMonthlyStatsResponse, error) {
	if err := validateStatsPeriod(req.Year, req.Month); err != nil {
		return nil, err
	}

	stats, err := d.statsRepo.Get(ctx, req.UserID, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found monthly stats")
		}

		xcontext.Logger(ctx).Errorf("Cannot get monthly stats: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserMonthlyStatsResponse(model.ConvertUserMonthlyStats(stats))
	return &resp, nil
}

func (d *userStatsDomain) GetList(
	ctx context.Context, req *model.GetUserMonthlyStatsListRequest,
) (*model.GetUserMonthlyStatsListResponse, error) {
	var statsList []entity.UserMonthlyStats
	var err error
	if req.UserID != "" {
		statsList, err = d.statsRepo.GetListByUserID(ctx, req.UserID)
	} else {
		var offset, limit int
		offset, limit, err = checkPagination(ctx, req.Offset, req.Limit)
		if err != nil {
			return nil, err
		}
		statsList, err = d.statsRepo.GetList(ctx, offset, limit)
	}
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get monthly stats list: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetUserMonthlyStatsListResponse{Stats: []model.UserMonthlyStats{}}
	for i := range statsList {
		resp.Stats = append(resp.Stats, model.ConvertUserMonthlyStats(&statsList[i]))
	}

	return resp, nil
}

func (d *userStatsDomain) Upsert(
	ctx context.Context, req *model.UpsertUserMonthlyStatsRequest,
) (*model.UpsertUserMonthlyStatsResponse, error) {
	if err := validateStatsPeriod(req.Year, req.Month); err != nil {
		return nil, err
	}

	if req.TotalDistanceM < 0 {
		return nil, errorx.New(errorx.BadRequest, "Distance must not be negative")
	}

	if req.TotalDurationSec < 0 {
		return nil, errorx.New(errorx.BadRequest, "Duration must not be negative")
	}

	stats := &entity.UserMonthlyStats{
		UserID:           xcontext.RequestUserID(ctx),
		Year:             req.Year,
		Month:            req.Month,
		TotalDistanceM:   req.TotalDistanceM,
		TotalDurationSec: req.TotalDurationSec,
	}

	if err := d.statsRepo.Upsert(ctx, stats); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert monthly stats: %v", err)
		return nil, errorx.Unknown
	}

	stats, err := d.statsRepo.Get(ctx, stats.UserID, req.Year, req.Month)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get monthly stats after upsert: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpsertUserMonthlyStatsResponse(model.ConvertUserMonthlyStats(stats))
	return &resp, nil
}

func (d *userStatsDomain) Delete(
	ctx context.Context, req *model.DeleteUserMonthlyStatsRequest,
) (*model.DeleteUserMonthlyStatsResponse, error) {
	if err := validateStatsPeriod(req.Year, req.Month); err != nil {
		return nil, err
	}

	if err := d.statsRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.Year, req.Month); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found monthly stats")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete monthly stats: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteUserMonthlyStatsResponse{}, nil
}
