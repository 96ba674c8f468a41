package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/testutil"
	"github.com/stridelab/backend/pkg/xcontext"
)

func Test_activityDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	domain := NewActivityDomain(repository.NewActivityRepository())

	// Omitting the type falls back to other.
	resp, err := domain.Create(ctx, &model.CreateActivityRequest{
		DurationSec: 1800,
		DistanceM:   5000,
	})
	require.NoError(t, err)
	require.Equal(t, "other", resp.Type)
	require.Equal(t, user.ID, resp.UserID)

	_, err = domain.Create(ctx, &model.CreateActivityRequest{Type: "skydiving"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid activity type skydiving"), err)

	_, err = domain.Create(ctx, &model.CreateActivityRequest{DurationSec: -1})
	require.Equal(t, errorx.New(errorx.BadRequest, "Duration must not be negative"), err)

	_, err = domain.Create(ctx, &model.CreateActivityRequest{DistanceM: -1})
	require.Equal(t, errorx.New(errorx.BadRequest, "Distance must not be negative"), err)

	_, err = domain.Create(ctx, &model.CreateActivityRequest{ElevationGainM: -50})
	require.Equal(t, errorx.New(errorx.BadRequest, "Elevation gain must not be negative"), err)

	_, err = domain.Create(ctx, &model.CreateActivityRequest{Height: -3})
	require.Equal(t, errorx.New(errorx.BadRequest, "Height must not be negative"), err)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, err = domain.Create(ctx, &model.CreateActivityRequest{StartTime: &start, EndTime: &end})
	require.Equal(t, errorx.New(errorx.BadRequest, "End time must not be before start time"), err)
}

func Test_activityDomain_Update_ownerOnly(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewActivityDomain(repository.NewActivityRepository())

	newDistance := 7500.0
	_, err = domain.Update(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.UpdateActivityRequest{ID: activity.ID, DistanceM: &newDistance},
	)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the owner can update this activity"), err)

	resp, err := domain.Update(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.UpdateActivityRequest{ID: activity.ID, DistanceM: &newDistance},
	)
	require.NoError(t, err)
	require.Equal(t, newDistance, resp.DistanceM)
	require.Equal(t, string(activity.Type), resp.Type)

	badDistance := -1.0
	_, err = domain.Update(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.UpdateActivityRequest{ID: activity.ID, DistanceM: &badDistance},
	)
	require.Equal(t, errorx.New(errorx.BadRequest, "Distance must not be negative"), err)

	badElevation := -50
	_, err = domain.Update(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.UpdateActivityRequest{ID: activity.ID, ElevationGainM: &badElevation},
	)
	require.Equal(t, errorx.New(errorx.BadRequest, "Elevation gain must not be negative"), err)

	badHeight := -3
	_, err = domain.Update(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.UpdateActivityRequest{ID: activity.ID, Height: &badHeight},
	)
	require.Equal(t, errorx.New(errorx.BadRequest, "Height must not be negative"), err)

	_, err = domain.Update(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.UpdateActivityRequest{ID: "missing"},
	)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found activity"), err)
}

func Test_activityDomain_Delete_ownerOnly(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewActivityDomain(repository.NewActivityRepository())

	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.DeleteActivityRequest{ID: activity.ID},
	)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the owner can delete this activity"), err)

	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.DeleteActivityRequest{ID: activity.ID},
	)
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetActivityRequest{ID: activity.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found activity"), err)
}

func Test_activityDomain_Delete_removesDependents(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)

	_, err = testutil.SampleComment(ctx, &entity.Comment{ActivityID: activity.ID})
	require.NoError(t, err)

	giver, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	err = xcontext.DB(ctx).Create(&entity.Kudos{
		Base:       entity.Base{ID: uuid.NewString()},
		ActivityID: activity.ID,
		UserID:     giver.ID,
	}).Error
	require.NoError(t, err)

	err = xcontext.DB(ctx).Create(&entity.ActivityPoint{
		ID:         1,
		ActivityID: activity.ID,
		Lat:        48.85,
		Lon:        2.35,
	}).Error
	require.NoError(t, err)

	domain := NewActivityDomain(repository.NewActivityRepository())
	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, activity.UserID),
		&model.DeleteActivityRequest{ID: activity.ID},
	)
	require.NoError(t, err)

	// Dependents must be gone for real, not just hidden by the soft-delete
	// scope.
	var count int64
	err = xcontext.DB(ctx).Unscoped().Model(&entity.Comment{}).
		Where("activity_id=?", activity.ID).Count(&count).Error
	require.NoError(t, err)
	require.Zero(t, count)

	err = xcontext.DB(ctx).Unscoped().Model(&entity.Kudos{}).
		Where("activity_id=?", activity.ID).Count(&count).Error
	require.NoError(t, err)
	require.Zero(t, count)

	err = xcontext.DB(ctx).Model(&entity.ActivityPoint{}).
		Where("activity_id=?", activity.ID).Count(&count).Error
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_activityDomain_GetList_pagination(t *testing.T) {
	ctx := testutil.MockContext()
	for i := 0; i < 3; i++ {
		_, err := testutil.SampleActivity(ctx, nil)
		require.NoError(t, err)
	}

	domain := NewActivityDomain(repository.NewActivityRepository())

	resp, err := domain.GetList(ctx, &model.GetActivitiesRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2)

	// Zero limit takes the configured default.
	resp, err = domain.GetList(ctx, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 3)

	_, err = domain.GetList(ctx, &model.GetActivitiesRequest{Limit: 51})
	require.Equal(t, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (50)"), err)

	_, err = domain.GetList(ctx, &model.GetActivitiesRequest{Offset: -1})
	require.Equal(t, errorx.New(errorx.BadRequest, "Offset must not be negative"), err)
}
