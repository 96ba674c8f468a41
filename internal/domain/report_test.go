package domain

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/testutil"
)

func newReportDomain() *reportDomain {
	return NewReportDomain(
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
		repository.NewActivityRepository(),
		repository.NewCommentRepository(),
		repository.NewKudosRepository(),
		repository.NewFollowerRepository(),
		repository.NewUserMonthlyStatsRepository(),
	)
}

func Test_reportDomain_GetGlobalStats_noData(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newReportDomain().GetGlobalStats(ctx, &model.GetGlobalStatsReportRequest{})
	require.Equal(t, errorx.New(errorx.NotFound, "No data available to report."), err)
}

func Test_reportDomain_GetGlobalStats(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	activity, err := testutil.SampleActivity(ctx, &entity.Activity{
		UserID:         user.ID,
		DistanceM:      10000,
		DurationSec:    3600,
		ElevationGainM: 120,
	})
	require.NoError(t, err)

	err = repository.NewProfileRepository().Create(ctx, &entity.Profile{
		UserID: user.ID,
		Age:    sql.NullInt64{Valid: true, Int64: 30},
	})
	require.NoError(t, err)

	_, err = testutil.SampleComment(ctx, &entity.Comment{ActivityID: activity.ID})
	require.NoError(t, err)

	err = repository.NewKudosRepository().Create(ctx, &entity.Kudos{
		Base:       entity.Base{ID: uuid.NewString()},
		ActivityID: activity.ID,
		UserID:     user.ID,
	})
	require.NoError(t, err)

	fan, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	err = repository.NewFollowerRepository().Create(ctx, &entity.Follower{
		FollowerID: fan.ID,
		FolloweeID: user.ID,
	})
	require.NoError(t, err)

	err = repository.NewUserMonthlyStatsRepository().Upsert(ctx, &entity.UserMonthlyStats{
		UserID:         user.ID,
		Year:           2026,
		Month:          5,
		TotalDistanceM: 42000,
	})
	require.NoError(t, err)

	resp, err := newReportDomain().GetGlobalStats(ctx, &model.GetGlobalStatsReportRequest{})
	require.NoError(t, err)

	require.EqualValues(t, 1, resp.ActivitiesOverview.TotalActivities)
	require.EqualValues(t, 10000, resp.ActivitiesOverview.TotalDistanceMeters)
	require.EqualValues(t, 3600, resp.ActivitiesOverview.TotalDurationSeconds)
	require.NotNil(t, resp.ActivitiesOverview.AverageElevationGain)
	require.EqualValues(t, 120, *resp.ActivitiesOverview.AverageElevationGain)

	require.EqualValues(t, 1, resp.ProfilesOverview.TotalProfiles)
	require.NotNil(t, resp.ProfilesOverview.AverageAge)
	require.EqualValues(t, 30, *resp.ProfilesOverview.AverageAge)
	require.Nil(t, resp.ProfilesOverview.AverageWeightKg)

	// Sample comments and the follower test users also count here.
	require.EqualValues(t, 1, resp.UsersOverview.UsersWithProfiles)

	require.Len(t, resp.MostCommentedActivities, 1)
	require.Equal(t, activity.ID, resp.MostCommentedActivities[0].ActivityID)
	require.EqualValues(t, 1, resp.MostCommentedActivities[0].Count)

	require.Len(t, resp.MostLikedActivities, 1)
	require.Equal(t, activity.ID, resp.MostLikedActivities[0].ActivityID)

	require.Len(t, resp.MostFollowedUsers, 1)
	require.Equal(t, user.ID, resp.MostFollowedUsers[0].UserID)
	require.EqualValues(t, 1, resp.MostFollowedUsers[0].Count)

	require.Len(t, resp.GlobalDistanceLeaderboard, 1)
	require.Equal(t, user.Name, resp.GlobalDistanceLeaderboard[0].Name)
	require.EqualValues(t, 42000, resp.GlobalDistanceLeaderboard[0].TotalDistance)
}
