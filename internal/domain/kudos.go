package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type KudosDomain interface {
	Create(context.Context, *model.CreateKudosRequest) (*model.CreateKudosResponse, error)
	Get(context.Context, *model.GetKudosRequest) (*model.GetKudosResponse, error)
	GetList(context.Context, *model.GetKudosListRequest) (*model.GetKudosListResponse, error)
	Delete(context.Context, *model.DeleteKudosRequest) (*model.DeleteKudosResponse, error)
}

type kudosDomain struct {
	kudosRepo    repository.KudosRepository
	activityRepo repository.ActivityRepository
}

func NewKudosDomain(
	kudosRepo repository.KudosRepository,
	activityRepo repository.ActivityRepository,
) *kudosDomain {
	return &kudosDomain{
		kudosRepo:    kudosRepo,
		activityRepo: activityRepo,
	}
}

func (d *kudosDomain) Create(
	ctx context.Context, req *model.CreateKudosRequest,
) (*model.CreateKudosResponse, error) {
	if _, err := d.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity of kudos: %v", err)
		return nil, errorx.Unknown
	}

	kudos := &entity.Kudos{
		Base:       entity.Base{ID: uuid.NewString()},
		ActivityID: req.ActivityID,
		UserID:     xcontext.RequestUserID(ctx),
	}

	if err := d.kudosRepo.Create(ctx, kudos); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already gave kudos to this activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot create kudos: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateKudosResponse(model.ConvertKudos(kudos))
	return &resp, nil
}

func (d *kudosDomain) Get(
	ctx context.Context, req *model.GetKudosRequest,
) (*model.GetKudosResponse, error) {
	kudos, err := d.kudosRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found kudos")
		}

		xcontext.Logger(ctx).Errorf("Cannot get kudos: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetKudosResponse(model.ConvertKudos(kudos))
	return &resp, nil
}

func (d *kudosDomain) GetList(
	ctx context.Context, req *model.GetKudosListRequest,
) (*model.GetKudosListResponse, error) {
	var kudosList []entity.Kudos
	var err error
	if req.ActivityID != "" {
		kudosList, err = d.kudosRepo.GetListByActivityID(ctx, req.ActivityID)
	} else {
		var offset, limit int
		offset, limit, err = checkPagination(ctx, req.Offset, req.Limit)
		if err != nil {
			return nil, err
		}
		kudosList, err = d.kudosRepo.GetList(ctx, offset, limit)
	}
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get kudos list: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetKudosListResponse{Kudos: []model.Kudos{}}
	for i := range kudosList {
		resp.Kudos = append(resp.Kudos, model.ConvertKudos(&kudosList[i]))
	}

	return resp, nil
}

func (d *kudosDomain) Delete(
	ctx context.Context, req *model.DeleteKudosRequest,
) (*model.DeleteKudosResponse, error) {
	kudos, err := d.kudosRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found kudos")
		}

		xcontext.Logger(ctx).Errorf("Cannot get kudos: %v", err)
		return nil, errorx.Unknown
	}

	if kudos.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the giver can remove this kudos")
	}

	if err := d.kudosRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete kudos: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteKudosResponse{}, nil
}
