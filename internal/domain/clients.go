package domain

import (
	"context"

	"github.com/stridelab/backend/internal/client"
	"github.com/stridelab/backend/internal/model"
)

// ClientsDomain proxies the partner CRM clients resource. The caller already
// swallows partner failures, so these endpoints degrade to empty results
// instead of erroring.
type ClientsDomain interface {
	GetAll(context.Context, *model.GetExternalClientsRequest) (*model.GetExternalClientsResponse, error)
	Get(context.Context, *model.GetExternalClientRequest) (*model.GetExternalClientResponse, error)
	Create(context.Context, *model.CreateExternalClientRequest) (*model.CreateExternalClientResponse, error)
	Update(context.Context, *model.UpdateExternalClientRequest) (*model.UpdateExternalClientResponse, error)
	Delete(context.Context, *model.DeleteExternalClientRequest) (*model.DeleteExternalClientResponse, error)
}

type clientsDomain struct {
	caller client.ClientsCaller
}

func NewClientsDomain(caller client.ClientsCaller) *clientsDomain {
	return &clientsDomain{caller: caller}
}

func (d *clientsDomain) GetAll(
	ctx context.Context, req *model.GetExternalClientsRequest,
) (*model.GetExternalClientsResponse, error) {
	clients := d.caller.GetAll(ctx)
	if clients == nil {
		clients = []model.ExternalClient{}
	}

	return &model.GetExternalClientsResponse{Clients: clients}, nil
}

func (d *clientsDomain) Get(
	ctx context.Context, req *model.GetExternalClientRequest,
) (*model.GetExternalClientResponse, error) {
	return &model.GetExternalClientResponse{Client: d.caller.Get(ctx, req.ID)}, nil
}

func (d *clientsDomain) Create(
	ctx context.Context, req *model.CreateExternalClientRequest,
) (*model.CreateExternalClientResponse, error) {
	return &model.CreateExternalClientResponse{Client: d.caller.Create(ctx, *req)}, nil
}

func (d *clientsDomain) Update(
	ctx context.Context, req *model.UpdateExternalClientRequest,
) (*model.UpdateExternalClientResponse, error) {
	return &model.UpdateExternalClientResponse{Client: d.caller.Update(ctx, req.ID, *req)}, nil
}

func (d *clientsDomain) Delete(
	ctx context.Context, req *model.DeleteExternalClientRequest,
) (*model.DeleteExternalClientResponse, error) {
	return &model.DeleteExternalClientResponse{Success: d.caller.Delete(ctx, req.ID)}, nil
}
