package domain

import (
	"context"
	"database/sql"

	mathutil "github.com/pkg/math"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
)

// reportTopN bounds every ranking section of the global report.
const reportTopN = 10

type ReportDomain interface {
	GetGlobalStats(context.Context, *model.GetGlobalStatsReportRequest) (*model.GetGlobalStatsReportResponse, error)
}

type reportDomain struct {
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	commentRepo  repository.CommentRepository
	kudosRepo    repository.KudosRepository
	followerRepo repository.FollowerRepository
	statsRepo    repository.UserMonthlyStatsRepository
}

func NewReportDomain(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	activityRepo repository.ActivityRepository,
	commentRepo repository.CommentRepository,
	kudosRepo repository.KudosRepository,
	followerRepo repository.FollowerRepository,
	statsRepo repository.UserMonthlyStatsRepository,
) *reportDomain {
	return &reportDomain{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		commentRepo:  commentRepo,
		kudosRepo:    kudosRepo,
		followerRepo: followerRepo,
		statsRepo:    statsRepo,
	}
}

func nullableAverage(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

// GetGlobalStats recomputes the whole report from the database on every call.
func (d *reportDomain) GetGlobalStats(
	ctx context.Context, req *model.GetGlobalStatsReportRequest,
) (*model.GetGlobalStatsReportResponse, error) {
	activityStats, err := d.activityRepo.Statistic(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activity statistic: %v", err)
		return nil, errorx.Unknown
	}

	if activityStats.TotalActivities == 0 {
		return nil, errorx.New(errorx.NotFound, "No data available to report.")
	}

	profileStats, err := d.profileRepo.Statistic(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get profile statistic: %v", err)
		return nil, errorx.Unknown
	}

	userStats, err := d.userRepo.Statistic(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user statistic: %v", err)
		return nil, errorx.Unknown
	}

	commentCounts, err := d.commentRepo.CountByActivity(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comments per activity: %v", err)
		return nil, errorx.Unknown
	}

	kudosCounts, err := d.kudosRepo.CountByActivity(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count kudos per activity: %v", err)
		return nil, errorx.Unknown
	}

	topFollowees, err := d.followerRepo.TopFollowees(ctx, reportTopN)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get top followees: %v", err)
		return nil, errorx.Unknown
	}

	leaderboard, err := d.statsRepo.DistanceLeaderboard(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get distance leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetGlobalStatsReportResponse{
		ActivitiesOverview: model.ActivitiesOverview{
			TotalActivities:      activityStats.TotalActivities,
			TotalDistanceMeters:  activityStats.TotalDistanceMeters.Float64,
			TotalDurationSeconds: activityStats.TotalDurationSeconds.Float64,
			AverageElevationGain: nullableAverage(activityStats.AverageElevationGain),
		},
		ProfilesOverview: model.ProfilesOverview{
			TotalProfiles:   profileStats.TotalProfiles,
			AverageAge:      nullableAverage(profileStats.AverageAge),
			AverageWeightKg: nullableAverage(profileStats.AverageWeightKg),
			AverageHeightCm: nullableAverage(profileStats.AverageHeightCm),
		},
		UsersOverview: model.UsersOverview{
			TotalUsers:        userStats.TotalUsers,
			UsersWithProfiles: userStats.UsersWithProfiles,
		},
		MostCommentedActivities:   []model.ActivityEngagement{},
		MostLikedActivities:       []model.ActivityEngagement{},
		MostFollowedUsers:         []model.UserFollowerCount{},
		GlobalDistanceLeaderboard: []model.LeaderboardEntry{},
	}

	for _, c := range commentCounts[:mathutil.Min(reportTopN, len(commentCounts))] {
		resp.MostCommentedActivities = append(resp.MostCommentedActivities, model.ActivityEngagement{
			ActivityID: c.ActivityID,
			Count:      c.CommentCount,
		})
	}

	for _, k := range kudosCounts[:mathutil.Min(reportTopN, len(kudosCounts))] {
		resp.MostLikedActivities = append(resp.MostLikedActivities, model.ActivityEngagement{
			ActivityID: k.ActivityID,
			Count:      k.KudosCount,
		})
	}

	for _, f := range topFollowees {
		resp.MostFollowedUsers = append(resp.MostFollowedUsers, model.UserFollowerCount{
			UserID: f.FolloweeID,
			Count:  f.FollowerCount,
		})
	}

	for _, l := range leaderboard {
		resp.GlobalDistanceLeaderboard = append(resp.GlobalDistanceLeaderboard, model.LeaderboardEntry{
			Name:          l.Username,
			TotalDistance: l.TotalDistance,
		})
	}

	return resp, nil
}
