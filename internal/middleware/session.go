package middleware

import (
	"context"

	"github.com/stridelab/backend/pkg/router"
	"github.com/stridelab/backend/pkg/xcontext"
)

// SessionResponse marks responses whose values must be persisted in the
// session cookie.
type SessionResponse interface {
	SessionInfo() map[string]any
}

// HandleSaveSession stores the session values of a SessionResponse after a
// successful handler.
func HandleSaveSession() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		sessionResp, ok := xcontext.Response(ctx).(SessionResponse)
		if !ok {
			return ctx, nil
		}

		sessionInfo := sessionResp.SessionInfo()
		if sessionInfo == nil {
			return ctx, nil
		}

		r := xcontext.HTTPRequest(ctx)
		session, err := xcontext.SessionStore(ctx).Get(r, xcontext.Configs(ctx).Session.Name)
		if err != nil {
			return ctx, err
		}

		for k, v := range sessionInfo {
			session.Values[k] = v
		}

		if err := session.Save(r, xcontext.HTTPWriter(ctx)); err != nil {
			return ctx, err
		}

		return ctx, nil
	}
}
