package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/testutil"
	"github.com/stridelab/backend/pkg/xcontext"
)

func Test_profileDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	domain := NewProfileDomain(repository.NewProfileRepository(), repository.NewUserRepository())

	badGender := "robot"
	_, err = domain.Create(ctx, &model.CreateProfileRequest{Gender: &badGender})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid gender robot"), err)

	badWeight := -70.0
	_, err = domain.Create(ctx, &model.CreateProfileRequest{WeightKg: &badWeight})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid weight"), err)

	badAge := int64(-1)
	_, err = domain.Create(ctx, &model.CreateProfileRequest{Age: &badAge})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid age"), err)

	// Zero is a valid measurement, only negatives are rejected.
	gender := "female"
	age := int64(28)
	zeroWeight := 0.0
	resp, err := domain.Create(ctx, &model.CreateProfileRequest{
		DisplayName: "Runner",
		Gender:      &gender,
		Age:         &age,
		WeightKg:    &zeroWeight,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.UserID)
	require.NotNil(t, resp.Gender)
	require.Equal(t, "female", *resp.Gender)
	require.NotNil(t, resp.WeightKg)
	require.Equal(t, 0.0, *resp.WeightKg)

	// One profile per user.
	_, err = domain.Create(ctx, &model.CreateProfileRequest{})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Profile already exists"), err)
}

func Test_profileDomain_Update_ownerOnly(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewProfileDomain(repository.NewProfileRepository(), repository.NewUserRepository())

	_, err = domain.Create(
		xcontext.WithRequestUserID(ctx, user.ID),
		&model.CreateProfileRequest{DisplayName: "Runner"},
	)
	require.NoError(t, err)

	city := "Lyon"
	_, err = domain.Update(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.UpdateProfileRequest{UserID: user.ID, City: &city},
	)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the owner can update this profile"), err)

	resp, err := domain.Update(
		xcontext.WithRequestUserID(ctx, user.ID),
		&model.UpdateProfileRequest{UserID: user.ID, City: &city},
	)
	require.NoError(t, err)
	require.Equal(t, "Lyon", resp.City)
	require.Equal(t, "Runner", resp.DisplayName)
}

func Test_profileDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	domain := NewProfileDomain(repository.NewProfileRepository(), repository.NewUserRepository())

	_, err = domain.Delete(ctx, &model.DeleteProfileRequest{UserID: user.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found profile"), err)

	_, err = domain.Create(ctx, &model.CreateProfileRequest{})
	require.NoError(t, err)

	_, err = domain.Delete(ctx, &model.DeleteProfileRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetProfileRequest{UserID: user.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found profile"), err)
}
