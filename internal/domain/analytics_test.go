package domain

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/testutil"
)

func newAnalyticsDomain() *analyticsDomain {
	return NewAnalyticsDomain(
		repository.NewProfileRepository(),
		repository.NewActivityRepository(),
		repository.NewCommentRepository(),
		repository.NewKudosRepository(),
		repository.NewFollowerRepository(),
		repository.NewUserMonthlyStatsRepository(),
	)
}

func Test_analyticsDomain_noData(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAnalyticsDomain()

	resp, err := domain.Leaderboard(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Equal(t, "no data", resp.Message)
	require.Empty(t, resp.Dataset)
	require.Empty(t, resp.Statistics)
	require.Empty(t, resp.GroupedAnalysis)
}

func Test_analyticsDomain_Leaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAnalyticsDomain()

	first, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	second, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	statsRepo := repository.NewUserMonthlyStatsRepository()
	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserMonthlyStats{
		UserID: first.ID, Year: 2026, Month: 1, TotalDistanceM: 10000,
	}))
	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserMonthlyStats{
		UserID: second.ID, Year: 2026, Month: 1, TotalDistanceM: 20000,
	}))

	resp, err := domain.Leaderboard(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Message)
	require.Len(t, resp.Dataset, 2)

	stats, ok := resp.Statistics["total_distance"]
	require.True(t, ok)
	require.EqualValues(t, 15000, stats.Mean)
	require.EqualValues(t, 15000, stats.Median)
	require.EqualValues(t, 10000, stats.Min)
	require.EqualValues(t, 20000, stats.Max)

	// The username column is not numeric and gets no statistics.
	_, ok = resp.Statistics["username"]
	require.False(t, ok)
}

func Test_analyticsDomain_SocialEngagement_groupedByType(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAnalyticsDomain()

	run, err := testutil.SampleActivity(ctx, &entity.Activity{Type: entity.ActivityRunning})
	require.NoError(t, err)
	_, err = testutil.SampleActivity(ctx, &entity.Activity{Type: entity.ActivityCycling})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := testutil.SampleComment(ctx, &entity.Comment{ActivityID: run.ID})
		require.NoError(t, err)
	}

	resp, err := domain.SocialEngagement(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Dataset, 2)
	require.Contains(t, resp.GroupedAnalysis, "running")
	require.Contains(t, resp.GroupedAnalysis, "cycling")
	require.EqualValues(t, 2, resp.GroupedAnalysis["running"]["comments"])
	require.EqualValues(t, 0, resp.GroupedAnalysis["cycling"]["comments"])
}

func Test_analyticsDomain_MonthlyTrends(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAnalyticsDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	statsRepo := repository.NewUserMonthlyStatsRepository()
	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserMonthlyStats{
		UserID: user.ID, Year: 2026, Month: 1, TotalDistanceM: 10000,
	}))
	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserMonthlyStats{
		UserID: user.ID, Year: 2026, Month: 2, TotalDistanceM: 12000,
	}))

	resp, err := domain.MonthlyTrends(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Dataset, 2)
	require.Equal(t, "2026-01", resp.Dataset[0]["period"])
	require.EqualValues(t, 11000, resp.Statistics["total_distance_m"].Mean)
}

func Test_analyticsDomain_ActivityPerformance_speed(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAnalyticsDomain()

	_, err := testutil.SampleActivity(ctx, &entity.Activity{
		Type:        entity.ActivityRunning,
		DistanceM:   5000,
		DurationSec: 1000,
	})
	require.NoError(t, err)

	resp, err := domain.ActivityPerformance(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Dataset, 1)
	require.EqualValues(t, 5, resp.Dataset[0]["speed_m_per_sec"])
	require.EqualValues(t, 5, resp.Statistics["speed_m_per_sec"].Mean)
	require.Contains(t, resp.GroupedAnalysis, "running")
}

func Test_analyticsDomain_UserLevels(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAnalyticsDomain()

	profileRepo := repository.NewProfileRepository()
	withProfile := func(init entity.Profile) {
		user, err := testutil.SampleUser(ctx, nil)
		require.NoError(t, err)
		init.UserID = user.ID
		require.NoError(t, profileRepo.Create(ctx, &init))
	}

	withProfile(entity.Profile{
		Gender: sql.NullString{Valid: true, String: "female"},
		Age:    sql.NullInt64{Valid: true, Int64: 28},
	})
	withProfile(entity.Profile{
		Age: sql.NullInt64{Valid: true, Int64: 34},
	})

	resp, err := domain.UserLevels(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Dataset, 2)
	require.EqualValues(t, 31, resp.Statistics["age"].Mean)

	// A profile without a gender lands in the unknown group.
	require.Contains(t, resp.GroupedAnalysis, "female")
	require.Contains(t, resp.GroupedAnalysis, "unknown")
	require.EqualValues(t, 28, resp.GroupedAnalysis["female"]["age"])
}
