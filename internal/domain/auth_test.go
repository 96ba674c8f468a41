package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/crypto"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/testutil"
	"github.com/stridelab/backend/pkg/xcontext"
)

func Test_authDomain_Register_duplicateUsername(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(), repository.NewRefreshTokenRepository())

	resp, err := domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.User.Name)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Password: "another-secret",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	_, err = domain.Register(ctx, &model.RegisterRequest{Name: "   ", Password: "secret"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow empty username"), err)
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(), repository.NewRefreshTokenRepository())

	_, err := domain.Register(ctx, &model.RegisterRequest{Name: "bob", Password: "hunter2"})
	require.NoError(t, err)

	resp, err := domain.Login(ctx, &model.LoginRequest{Name: "bob", Password: "hunter2"})
	require.NoError(t, err)

	var accessToken model.AccessToken
	require.NoError(t, xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken))
	require.Equal(t, "bob", accessToken.Name)

	_, err = domain.Login(ctx, &model.LoginRequest{Name: "bob", Password: "wrong"})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)

	_, err = domain.Login(ctx, &model.LoginRequest{Name: "nobody", Password: "hunter2"})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(), repository.NewRefreshTokenRepository())

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	tokenObj := model.RefreshToken{Family: "family", Counter: 0}
	err = domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     user.ID,
		Family:     crypto.SHA256([]byte(tokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, tokenObj)
	require.NoError(t, err)

	// First refresh succeeds and rotates the family counter.
	resp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	var accessToken model.AccessToken
	require.NoError(t, xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken))
	require.Equal(t, user.ID, accessToken.ID)

	// Replaying the old token mismatches the counter and revokes the family.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Equal(t, errorx.New(errorx.StolenDetected, "Refresh token has been stolen"), err)

	// The family is gone, so even the rotated token is now rejected.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid refresh token"), err)
}
