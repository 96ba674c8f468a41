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

func Test_kudosDomain_Create_oncePerActivity(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	domain := NewKudosDomain(repository.NewKudosRepository(), repository.NewActivityRepository())

	_, err = domain.Create(ctx, &model.CreateKudosRequest{ActivityID: "missing"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found activity"), err)

	resp, err := domain.Create(ctx, &model.CreateKudosRequest{ActivityID: activity.ID})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.UserID)

	_, err = domain.Create(ctx, &model.CreateKudosRequest{ActivityID: activity.ID})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Already gave kudos to this activity"), err)
}

func Test_kudosDomain_GetList_byActivity(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	other, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)

	domain := NewKudosDomain(repository.NewKudosRepository(), repository.NewActivityRepository())

	for _, activityID := range []string{activity.ID, activity.ID, other.ID} {
		user, err := testutil.SampleUser(ctx, nil)
		require.NoError(t, err)

		_, err = domain.Create(
			xcontext.WithRequestUserID(ctx, user.ID),
			&model.CreateKudosRequest{ActivityID: activityID},
		)
		require.NoError(t, err)
	}

	resp, err := domain.GetList(ctx, &model.GetKudosListRequest{ActivityID: activity.ID})
	require.NoError(t, err)
	require.Len(t, resp.Kudos, 2)

	resp, err = domain.GetList(ctx, &model.GetKudosListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Kudos, 3)
}

func Test_kudosDomain_Delete_giverOnly(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	giver, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewKudosDomain(repository.NewKudosRepository(), repository.NewActivityRepository())

	kudos, err := domain.Create(
		xcontext.WithRequestUserID(ctx, giver.ID),
		&model.CreateKudosRequest{ActivityID: activity.ID},
	)
	require.NoError(t, err)

	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.DeleteKudosRequest{ID: kudos.ID},
	)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the giver can remove this kudos"), err)

	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, giver.ID),
		&model.DeleteKudosRequest{ID: kudos.ID},
	)
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetKudosRequest{ID: kudos.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found kudos"), err)
}

func Test_kudosDomain_Create_afterRemoval(t *testing.T) {
	ctx := testutil.MockContext()
	activity, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	giver, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, giver.ID)

	domain := NewKudosDomain(repository.NewKudosRepository(), repository.NewActivityRepository())

	kudos, err := domain.Create(ctx, &model.CreateKudosRequest{ActivityID: activity.ID})
	require.NoError(t, err)

	_, err = domain.Delete(ctx, &model.DeleteKudosRequest{ID: kudos.ID})
	require.NoError(t, err)

	// Removing kudos must free the one-per-user slot for this activity.
	resp, err := domain.Create(ctx, &model.CreateKudosRequest{ActivityID: activity.ID})
	require.NoError(t, err)
	require.Equal(t, giver.ID, resp.UserID)
}
