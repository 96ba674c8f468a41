package domain

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/testutil"
	"github.com/stridelab/backend/pkg/xcontext"
)

func newActivityPointDomain(t *testing.T) *activityPointDomain {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewActivityPointDomain(
		repository.NewActivityPointRepository(),
		repository.NewActivityRepository(),
		node,
	)
}

func Test_activityPointDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newActivityPointDomain(t)
	ownerCtx := xcontext.WithRequestUserID(ctx, activity.UserID)

	_, err = domain.Create(ownerCtx, &model.CreateActivityPointRequest{
		ActivityID: activity.ID,
		Lat:        91,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Latitude must be in [-90, 90]"), err)

	_, err = domain.Create(ownerCtx, &model.CreateActivityPointRequest{
		ActivityID: activity.ID,
		Lon:        -181,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Longitude must be in [-180, 180]"), err)

	_, err = domain.Create(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.CreateActivityPointRequest{ActivityID: activity.ID, Lat: 48.85, Lon: 2.35},
	)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the activity owner can modify its points"), err)

	resp, err := domain.Create(ownerCtx, &model.CreateActivityPointRequest{
		ActivityID: activity.ID,
		Lat:        48.85,
		Lon:        2.35,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, activity.ID, resp.ActivityID)
}

func Test_activityPointDomain_GetList_byActivity(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)

	domain := newActivityPointDomain(t)
	ownerCtx := xcontext.WithRequestUserID(ctx, activity.UserID)

	for i := 0; i < 3; i++ {
		_, err := domain.Create(ownerCtx, &model.CreateActivityPointRequest{
			ActivityID: activity.ID,
			Lat:        48.85,
			Lon:        2.35 + float64(i)/1000,
		})
		require.NoError(t, err)
	}

	resp, err := domain.GetList(ctx, &model.GetActivityPointsRequest{ActivityID: activity.ID})
	require.NoError(t, err)
	require.Len(t, resp.Points, 3)
}

func Test_activityPointDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)

	domain := newActivityPointDomain(t)
	ownerCtx := xcontext.WithRequestUserID(ctx, activity.UserID)

	point, err := domain.Create(ownerCtx, &model.CreateActivityPointRequest{
		ActivityID: activity.ID,
		Lat:        48.85,
		Lon:        2.35,
	})
	require.NoError(t, err)

	_, err = domain.Update(ownerCtx, &model.UpdateActivityPointRequest{ID: "not-a-number"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid point id"), err)

	badSpeed := -1.0
	_, err = domain.Update(ownerCtx, &model.UpdateActivityPointRequest{
		ID:    point.ID,
		Speed: &badSpeed,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Speed must not be negative"), err)

	speed := 2.5
	resp, err := domain.Update(ownerCtx, &model.UpdateActivityPointRequest{
		ID:    point.ID,
		Speed: &speed,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Speed)
	require.Equal(t, speed, *resp.Speed)
}

func Test_activityPointDomain_Delete_ownerOnly(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newActivityPointDomain(t)
	ownerCtx := xcontext.WithRequestUserID(ctx, activity.UserID)

	point, err := domain.Create(ownerCtx, &model.CreateActivityPointRequest{
		ActivityID: activity.ID,
		Lat:        48.85,
		Lon:        2.35,
	})
	require.NoError(t, err)

	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.DeleteActivityPointRequest{ID: point.ID},
	)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the activity owner can modify its points"), err)

	_, err = domain.Delete(ownerCtx, &model.DeleteActivityPointRequest{ID: point.ID})
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetActivityPointRequest{ID: point.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found activity point"), err)
}
