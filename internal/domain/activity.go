package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/enum"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityDomain interface {
	Create(context.Context, *model.CreateActivityRequest) (*model.CreateActivityResponse, error)
	Get(context.Context, *model.GetActivityRequest) (*model.GetActivityResponse, error)
	GetList(context.Context, *model.GetActivitiesRequest) (*model.GetActivitiesResponse, error)
	Update(context.Context, *model.UpdateActivityRequest) (*model.UpdateActivityResponse, error)
	Delete(context.Context, *model.DeleteActivityRequest) (*model.DeleteActivityResponse, error)
}

type activityDomain struct {
	activityRepo repository.ActivityRepository
}

func NewActivityDomain(activityRepo repository.ActivityRepository) *activityDomain {
	return &activityDomain{activityRepo: activityRepo}
}

func nullTimeOf(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Valid: true, Time: *t}
}

func validateTimeRange(start, end sql.NullTime) error {
	if start.Valid && end.Valid && end.Time.Before(start.Time) {
		return errorx.New(errorx.BadRequest, "End time must not be before start time")
	}
	return nil
}

func (d *activityDomain) Create(
	ctx context.Context, req *model.CreateActivityRequest,
) (*model.CreateActivityResponse, error) {
	activityType := entity.ActivityOther
	if req.Type != "" {
		var err error
		activityType, err = enum.ToEnum[entity.ActivityType](req.Type)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid activity type %s", req.Type)
		}
	}

	if req.DurationSec < 0 {
		return nil, errorx.New(errorx.BadRequest, "Duration must not be negative")
	}

	if req.DistanceM < 0 {
		return nil, errorx.New(errorx.BadRequest, "Distance must not be negative")
	}

	if req.ElevationGainM < 0 {
		return nil, errorx.New(errorx.BadRequest, "Elevation gain must not be negative")
	}

	if req.Height < 0 {
		return nil, errorx.New(errorx.BadRequest, "Height must not be negative")
	}

	startTime := nullTimeOf(req.StartTime)
	endTime := nullTimeOf(req.EndTime)
	if err := validateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}

	activity := &entity.Activity{
		Base:           entity.Base{ID: uuid.NewString()},
		UserID:         xcontext.RequestUserID(ctx),
		Type:           activityType,
		DurationSec:    req.DurationSec,
		DistanceM:      req.DistanceM,
		ElevationGainM: req.ElevationGainM,
		Height:         req.Height,
		StartTime:      startTime,
		EndTime:        endTime,
	}

	if err := d.activityRepo.Create(ctx, activity); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateActivityResponse(model.ConvertActivity(activity))
	return &resp, nil
}

func (d *activityDomain) Get(
	ctx context.Context, req *model.GetActivityRequest,
) (*model.GetActivityResponse, error) {
	activity, err := d.activityRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetActivityResponse(model.ConvertActivity(activity))
	return &resp, nil
}

func (d *activityDomain) GetList(
	ctx context.Context, req *model.GetActivitiesRequest,
) (*model.GetActivitiesResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	activities, err := d.activityRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetActivitiesResponse{Activities: []model.Activity{}}
	for i := range activities {
		resp.Activities = append(resp.Activities, model.ConvertActivity(&activities[i]))
	}

	return resp, nil
}

func (d *activityDomain) Update(
	ctx context.Context, req *model.UpdateActivityRequest,
) (*model.UpdateActivityResponse, error) {
	activity, err := d.activityRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	if activity.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the owner can update this activity")
	}

	updateMap := map[string]any{}
	if req.Type != nil {
		activityType, err := enum.ToEnum[entity.ActivityType](*req.Type)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid activity type %s", *req.Type)
		}
		updateMap["type"] = activityType
	}

	if req.DurationSec != nil {
		if *req.DurationSec < 0 {
			return nil, errorx.New(errorx.BadRequest, "Duration must not be negative")
		}
		updateMap["duration_sec"] = *req.DurationSec
	}

	if req.DistanceM != nil {
		if *req.DistanceM < 0 {
			return nil, errorx.New(errorx.BadRequest, "Distance must not be negative")
		}
		updateMap["distance_m"] = *req.DistanceM
	}

	if req.ElevationGainM != nil {
		if *req.ElevationGainM < 0 {
			return nil, errorx.New(errorx.BadRequest, "Elevation gain must not be negative")
		}
		updateMap["elevation_gain_m"] = *req.ElevationGainM
	}

	if req.Height != nil {
		if *req.Height < 0 {
			return nil, errorx.New(errorx.BadRequest, "Height must not be negative")
		}
		updateMap["height"] = *req.Height
	}

	startTime := activity.StartTime
	if req.StartTime != nil {
		startTime = nullTimeOf(req.StartTime)
		updateMap["start_time"] = startTime
	}

	endTime := activity.EndTime
	if req.EndTime != nil {
		endTime = nullTimeOf(req.EndTime)
		updateMap["end_time"] = endTime
	}

	if err := validateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}

	if len(updateMap) > 0 {
		if err := d.activityRepo.UpdateByID(ctx, req.ID, updateMap); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update activity: %v", err)
			return nil, errorx.Unknown
		}
	}

	activity, err = d.activityRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activity after update: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateActivityResponse(model.ConvertActivity(activity))
	return &resp, nil
}

func (d *activityDomain) Delete(
	ctx context.Context, req *model.DeleteActivityRequest,
) (*model.DeleteActivityResponse, error) {
	activity, err := d.activityRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	if activity.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the owner can delete this activity")
	}

	if err := d.activityRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteActivityResponse{}, nil
}
