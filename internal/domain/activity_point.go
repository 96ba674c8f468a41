package domain

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityPointDomain interface {
	Create(context.Context, *model.CreateActivityPointRequest) (*model.CreateActivityPointResponse, error)
	Get(context.Context, *model.GetActivityPointRequest) (*model.GetActivityPointResponse, error)
	GetList(context.Context, *model.GetActivityPointsRequest) (*model.GetActivityPointsResponse, error)
	Update(context.Context, *model.UpdateActivityPointRequest) (*model.UpdateActivityPointResponse, error)
	Delete(context.Context, *model.DeleteActivityPointRequest) (*model.DeleteActivityPointResponse, error)
}

type activityPointDomain struct {
	pointRepo    repository.ActivityPointRepository
	activityRepo repository.ActivityRepository
	idGenerator  *snowflake.Node
}

func NewActivityPointDomain(
	pointRepo repository.ActivityPointRepository,
	activityRepo repository.ActivityRepository,
	idGenerator *snowflake.Node,
) *activityPointDomain {
	return &activityPointDomain{
		pointRepo:    pointRepo,
		activityRepo: activityRepo,
		idGenerator:  idGenerator,
	}
}

func parsePointID(id string) (int64, error) {
	pointID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, errorx.New(errorx.BadRequest, "Invalid point id")
	}
	return pointID, nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return errorx.New(errorx.BadRequest, "Latitude must be in [-90, 90]")
	}

	if lon < -180 || lon > 180 {
		return errorx.New(errorx.BadRequest, "Longitude must be in [-180, 180]")
	}

	return nil
}

// ownedActivity loads the parent activity and checks the caller owns it.
func (d *activityPointDomain) ownedActivity(ctx context.Context, activityID string) error {
	activity, err := d.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity of point: %v", err)
		return errorx.Unknown
	}

	if activity.UserID != xcontext.RequestUserID(ctx) {
		return errorx.New(errorx.PermissionDenied, "Only the activity owner can modify its points")
	}

	return nil
}

func (d *activityPointDomain) Create(
	ctx context.Context, req *model.CreateActivityPointRequest,
) (*model.CreateActivityPointResponse, error) {
	if err := validateCoordinates(req.Lat, req.Lon); err != nil {
		return nil, err
	}

	if err := d.ownedActivity(ctx, req.ActivityID); err != nil {
		return nil, err
	}

	point := &entity.ActivityPoint{
		ID:         d.idGenerator.Generate().Int64(),
		ActivityID: req.ActivityID,
		Lat:        req.Lat,
		Lon:        req.Lon,
		RecordedAt: nullTimeOf(req.RecordedAt),
	}

	if req.Ele != nil {
		point.Ele = sql.NullFloat64{Valid: true, Float64: *req.Ele}
	}

	if req.Speed != nil {
		if *req.Speed < 0 {
			return nil, errorx.New(errorx.BadRequest, "Speed must not be negative")
		}
		point.Speed = sql.NullFloat64{Valid: true, Float64: *req.Speed}
	}

	if req.Cadence != nil {
		if *req.Cadence < 0 {
			return nil, errorx.New(errorx.BadRequest, "Cadence must not be negative")
		}
		point.Cadence = sql.NullInt64{Valid: true, Int64: *req.Cadence}
	}

	if err := d.pointRepo.Create(ctx, point); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity point: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateActivityPointResponse(model.ConvertActivityPoint(point))
	return &resp, nil
}

func (d *activityPointDomain) Get(
	ctx context.Context, req *model.GetActivityPointRequest,
) (*model.GetActivityPointResponse, error) {
	pointID, err := parsePointID(req.ID)
	if err != nil {
		return nil, err
	}

	point, err := d.pointRepo.GetByID(ctx, pointID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity point")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity point: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetActivityPointResponse(model.ConvertActivityPoint(point))
	return &resp, nil
}

func (d *activityPointDomain) GetList(
	ctx context.Context, req *model.GetActivityPointsRequest,
) (*model.GetActivityPointsResponse, error) {
	resp := &model.GetActivityPointsResponse{Points: []model.ActivityPoint{}}

	var points []entity.ActivityPoint
	var err error
	if req.ActivityID != "" {
		points, err = d.pointRepo.GetListByActivityID(ctx, req.ActivityID)
	} else {
		var offset, limit int
		offset, limit, err = checkPagination(ctx, req.Offset, req.Limit)
		if err != nil {
			return nil, err
		}
		points, err = d.pointRepo.GetList(ctx, offset, limit)
	}
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activity points: %v", err)
		return nil, errorx.Unknown
	}

	for i := range points {
		resp.Points = append(resp.Points, model.ConvertActivityPoint(&points[i]))
	}

	return resp, nil
}

func (d *activityPointDomain) Update(
	ctx context.Context, req *model.UpdateActivityPointRequest,
) (*model.UpdateActivityPointResponse, error) {
	pointID, err := parsePointID(req.ID)
	if err != nil {
		return nil, err
	}

	point, err := d.pointRepo.GetByID(ctx, pointID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity point")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity point: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownedActivity(ctx, point.ActivityID); err != nil {
		return nil, err
	}

	lat, lon := point.Lat, point.Lon
	if req.Lat != nil {
		lat = *req.Lat
	}
	if req.Lon != nil {
		lon = *req.Lon
	}
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	updateMap := map[string]any{}
	if req.Lat != nil {
		updateMap["lat"] = *req.Lat
	}

	if req.Lon != nil {
		updateMap["lon"] = *req.Lon
	}

	if req.RecordedAt != nil {
		updateMap["recorded_at"] = nullTimeOf(req.RecordedAt)
	}

	if req.Ele != nil {
		updateMap["ele"] = sql.NullFloat64{Valid: true, Float64: *req.Ele}
	}

	if req.Speed != nil {
		if *req.Speed < 0 {
			return nil, errorx.New(errorx.BadRequest, "Speed must not be negative")
		}
		updateMap["speed"] = sql.NullFloat64{Valid: true, Float64: *req.Speed}
	}

	if req.Cadence != nil {
		if *req.Cadence < 0 {
			return nil, errorx.New(errorx.BadRequest, "Cadence must not be negative")
		}
		updateMap["cadence"] = sql.NullInt64{Valid: true, Int64: *req.Cadence}
	}

	if len(updateMap) > 0 {
		if err := d.pointRepo.UpdateByID(ctx, pointID, updateMap); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update activity point: %v", err)
			return nil, errorx.Unknown
		}
	}

	point, err = d.pointRepo.GetByID(ctx, pointID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activity point after update: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateActivityPointResponse(model.ConvertActivityPoint(point))
	return &resp, nil
}

func (d *activityPointDomain) Delete(
	ctx context.Context, req *model.DeleteActivityPointRequest,
) (*model.DeleteActivityPointResponse, error) {
	pointID, err := parsePointID(req.ID)
	if err != nil {
		return nil, err
	}

	point, err := d.pointRepo.GetByID(ctx, pointID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity point")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity point: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownedActivity(ctx, point.ActivityID); err != nil {
		return nil, err
	}

	if err := d.pointRepo.DeleteByID(ctx, pointID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete activity point: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteActivityPointResponse{}, nil
}
