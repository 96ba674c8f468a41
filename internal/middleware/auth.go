package middleware

import (
	"context"
	"strings"

	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/router"
	"github.com/stridelab/backend/pkg/xcontext"
)

// WithAuth resolves the caller identity from a bearer token or the session
// cookie and installs it on the context. Requests without a valid identity
// pass through anonymously.
func WithAuth() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := accessToken(ctx)
		if token == "" {
			return ctx, nil
		}

		var info model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &info); err != nil {
			return ctx, nil
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

// Authenticate rejects anonymous requests. It must run after WithAuth.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}
		return ctx, nil
	}
}

func accessToken(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)
	authorization := r.Header.Get("Authorization")
	if auth, token, found := strings.Cut(authorization, " "); found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	session, err := xcontext.SessionStore(ctx).Get(r, xcontext.Configs(ctx).Session.Name)
	if err != nil {
		return ""
	}

	if token, ok := session.Values["access_token"].(string); ok {
		return token
	}

	return ""
}
