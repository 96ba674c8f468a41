package router

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithRequestState(router.base)
		ctx = xcontext.WithHTTPRequest(ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		func() {
			var req Request
			if err := bindRequest(method, r, &req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
				return
			}

			for _, m := range router.befores {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}
				ctx = newCtx
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}
			xcontext.SetResponse(ctx, resp)

			for _, m := range router.afters {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}
				ctx = newCtx
			}
		}()

		writeResponse(ctx)

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

// bindRequest fills the request struct from the URL for reads and deletes,
// and from the JSON body for writes. Path variables always win over body or
// query values of the same name.
func bindRequest(method string, r *http.Request, req any) error {
	values := map[string]any{}

	switch method {
	case http.MethodGet, http.MethodDelete:
		for key, vals := range r.URL.Query() {
			if len(vals) > 0 {
				values[key] = vals[0]
			}
		}

	default:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(body) > 0 {
			if err := json.Unmarshal(body, req); err != nil {
				return err
			}
		}
	}

	for key, value := range mux.Vars(r) {
		values[key] = value
	}

	if len(values) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           req,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
