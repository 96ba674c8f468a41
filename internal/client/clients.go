package client

import (
	"context"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/pkg/api"
	"github.com/stridelab/backend/pkg/xcontext"
)

// ClientsCaller talks to the partner CRM exposing the clients resource under
// basic auth. Every failure is logged and swallowed so a partner outage never
// breaks a request of ours.
type ClientsCaller interface {
	GetAll(ctx context.Context) []model.ExternalClient
	Get(ctx context.Context, id int) *model.ExternalClient
	Create(ctx context.Context, data model.CreateExternalClientRequest) *model.ExternalClient
	Update(ctx context.Context, id int, data model.UpdateExternalClientRequest) *model.ExternalClient
	Delete(ctx context.Context, id int) bool
}

type clientsCaller struct {
	generator api.Generator
}

func NewClientsCaller(generator api.Generator) *clientsCaller {
	return &clientsCaller{generator: generator}
}

func basicAuth(ctx context.Context) api.Opt {
	syncCfg := xcontext.Configs(ctx).Sync
	return api.BasicAuth(syncCfg.Username, syncCfg.Password)
}

func decodeClient(ctx context.Context, body any) *model.ExternalClient {
	var result model.ExternalClient
	if err := mapstructure.WeakDecode(body, &result); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode client record: %v", err)
		return nil
	}

	return &result
}

func (c *clientsCaller) GetAll(ctx context.Context) []model.ExternalClient {
	resp, err := c.generator.New("/clients/").GET(ctx, basicAuth(ctx))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot list clients: %v", err)
		return nil
	}

	if resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Warnf("Got status %d when listing clients", resp.Code)
		return nil
	}

	records, ok := resp.Body.(api.Array)
	if !ok {
		xcontext.Logger(ctx).Warnf("Unexpected body when listing clients")
		return nil
	}

	result := []model.ExternalClient{}
	for _, record := range records {
		if client := decodeClient(ctx, record); client != nil {
			result = append(result, *client)
		}
	}

	return result
}

func (c *clientsCaller) Get(ctx context.Context, id int) *model.ExternalClient {
	resp, err := c.generator.New("/clients/%d/", id).GET(ctx, basicAuth(ctx))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get client %d: %v", id, err)
		return nil
	}

	if resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Warnf("Got status %d when getting client %d", resp.Code, id)
		return nil
	}

	return decodeClient(ctx, resp.Body)
}

func (c *clientsCaller) Create(
	ctx context.Context, data model.CreateExternalClientRequest,
) *model.ExternalClient {
	body := api.JSON{"name": data.Name, "email": data.Email, "phone": data.Phone}
	resp, err := c.generator.New("/clients/").Body(body).POST(ctx, basicAuth(ctx))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot create client: %v", err)
		return nil
	}

	if resp.Code != http.StatusCreated && resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Warnf("Got status %d when creating client", resp.Code)
		return nil
	}

	return decodeClient(ctx, resp.Body)
}

func (c *clientsCaller) Update(
	ctx context.Context, id int, data model.UpdateExternalClientRequest,
) *model.ExternalClient {
	body := api.JSON{"name": data.Name, "email": data.Email, "phone": data.Phone}
	resp, err := c.generator.New("/clients/%d/", id).Body(body).PUT(ctx, basicAuth(ctx))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update client %d: %v", id, err)
		return nil
	}

	if resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Warnf("Got status %d when updating client %d", resp.Code, id)
		return nil
	}

	return decodeClient(ctx, resp.Body)
}

func (c *clientsCaller) Delete(ctx context.Context, id int) bool {
	resp, err := c.generator.New("/clients/%d/", id).DELETE(ctx, basicAuth(ctx))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot delete client %d: %v", id, err)
		return false
	}

	if resp.Code != http.StatusNoContent && resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Warnf("Got status %d when deleting client %d", resp.Code, id)
		return false
	}

	return true
}
