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

func Test_userStatsDomain_Upsert(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	domain := NewUserStatsDomain(repository.NewUserMonthlyStatsRepository())

	_, err = domain.Upsert(ctx, &model.UpsertUserMonthlyStatsRequest{Year: 2026, Month: 13})
	require.Equal(t, errorx.New(errorx.BadRequest, "Month must be in [1, 12]"), err)

	_, err = domain.Upsert(ctx, &model.UpsertUserMonthlyStatsRequest{Year: 0, Month: 1})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid year"), err)

	_, err = domain.Upsert(ctx, &model.UpsertUserMonthlyStatsRequest{
		Year: 2026, Month: 5, TotalDistanceM: -1,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Distance must not be negative"), err)

	resp, err := domain.Upsert(ctx, &model.UpsertUserMonthlyStatsRequest{
		Year: 2026, Month: 5, TotalDistanceM: 42000, TotalDurationSec: 10800,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.UserID)
	require.EqualValues(t, 42000, resp.TotalDistanceM)

	// Repeating the month overwrites instead of duplicating.
	resp, err = domain.Upsert(ctx, &model.UpsertUserMonthlyStatsRequest{
		Year: 2026, Month: 5, TotalDistanceM: 50000, TotalDurationSec: 12600,
	})
	require.NoError(t, err)
	require.EqualValues(t, 50000, resp.TotalDistanceM)

	list, err := domain.GetList(ctx, &model.GetUserMonthlyStatsListRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, list.Stats, 1)
}

func Test_userStatsDomain_Delete_callerScoped(t *testing.T) {
	ctx := testutil.MockContext()
	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewUserStatsDomain(repository.NewUserMonthlyStatsRepository())

	_, err = domain.Upsert(
		xcontext.WithRequestUserID(ctx, owner.ID),
		&model.UpsertUserMonthlyStatsRequest{Year: 2026, Month: 5, TotalDistanceM: 42000},
	)
	require.NoError(t, err)

	// The delete runs against the caller's own rows only.
	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, stranger.ID),
		&model.DeleteUserMonthlyStatsRequest{Year: 2026, Month: 5},
	)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found monthly stats"), err)

	_, err = domain.Delete(
		xcontext.WithRequestUserID(ctx, owner.ID),
		&model.DeleteUserMonthlyStatsRequest{Year: 2026, Month: 5},
	)
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetUserMonthlyStatsRequest{
		UserID: owner.ID, Year: 2026, Month: 5,
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found monthly stats"), err)
}
