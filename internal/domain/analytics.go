package domain

import (
	"context"
	"fmt"

	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/analytics"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
)

const noDataMessage = "no data"

type AnalyticsDomain interface {
	Leaderboard(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
	SocialEngagement(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
	MonthlyTrends(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
	Influencers(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
	ActivityPerformance(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
	UserLevels(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
}

type analyticsDomain struct {
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	commentRepo  repository.CommentRepository
	kudosRepo    repository.KudosRepository
	followerRepo repository.FollowerRepository
	statsRepo    repository.UserMonthlyStatsRepository
}

func NewAnalyticsDomain(
	profileRepo repository.ProfileRepository,
	activityRepo repository.ActivityRepository,
	commentRepo repository.CommentRepository,
	kudosRepo repository.KudosRepository,
	followerRepo repository.FollowerRepository,
	statsRepo repository.UserMonthlyStatsRepository,
) *analyticsDomain {
	return &analyticsDomain{
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		commentRepo:  commentRepo,
		kudosRepo:    kudosRepo,
		followerRepo: followerRepo,
		statsRepo:    statsRepo,
	}
}

// describe assembles the common response shape of every analytics endpoint.
// An empty dataset yields an explicit no-data message instead of NaN filled
// statistics.
func describe(records []analytics.Record, groupBy string) *model.GetAnalyticsResponse {
	if len(records) == 0 {
		return &model.GetAnalyticsResponse{
			Message:    noDataMessage,
			Statistics: map[string]analytics.ColumnStats{},
		}
	}

	resp := &model.GetAnalyticsResponse{
		Dataset:    records,
		Statistics: analytics.Describe(records),
	}

	if groupBy != "" {
		resp.GroupedAnalysis = analytics.GroupMeans(records, groupBy)
	}

	return resp
}

type leaderboardRecord struct {
	Username      string  `structs:"username"`
	TotalDistance float64 `structs:"total_distance"`
}

func (d *analyticsDomain) Leaderboard(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	leaderboard, err := d.statsRepo.DistanceLeaderboard(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get distance leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	records := []analytics.Record{}
	for _, entry := range leaderboard {
		records = append(records, analytics.NewRecord(leaderboardRecord{
			Username:      entry.Username,
			TotalDistance: entry.TotalDistance,
		}))
	}

	return describe(records, ""), nil
}

type engagementRecord struct {
	ActivityID   string `structs:"activity_id"`
	ActivityType string `structs:"activity_type"`
	Comments     int64  `structs:"comments"`
	Kudos        int64  `structs:"kudos"`
}

func (d *analyticsDomain) SocialEngagement(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	activities, err := d.activityRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
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

	commentsByActivity := map[string]int64{}
	for _, c := range commentCounts {
		commentsByActivity[c.ActivityID] = c.CommentCount
	}

	kudosByActivity := map[string]int64{}
	for _, k := range kudosCounts {
		kudosByActivity[k.ActivityID] = k.KudosCount
	}

	records := []analytics.Record{}
	for i := range activities {
		records = append(records, analytics.NewRecord(engagementRecord{
			ActivityID:   activities[i].ID,
			ActivityType: string(activities[i].Type),
			Comments:     commentsByActivity[activities[i].ID],
			Kudos:        kudosByActivity[activities[i].ID],
		}))
	}

	return describe(records, "activity_type"), nil
}

type monthlyTrendRecord struct {
	Period           string  `structs:"period"`
	TotalDistanceM   float64 `structs:"total_distance_m"`
	TotalDurationSec float64 `structs:"total_duration_sec"`
	ActiveUsers      int64   `structs:"active_users"`
}

func (d *analyticsDomain) MonthlyTrends(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	totals, err := d.statsRepo.MonthlyTotals(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get monthly totals: %v", err)
		return nil, errorx.Unknown
	}

	records := []analytics.Record{}
	for _, t := range totals {
		records = append(records, analytics.NewRecord(monthlyTrendRecord{
			Period:           fmt.Sprintf("%04d-%02d", t.Year, t.Month),
			TotalDistanceM:   t.TotalDistanceM,
			TotalDurationSec: t.TotalDurationSec,
			ActiveUsers:      t.ActiveUsers,
		}))
	}

	return describe(records, ""), nil
}

type influencerRecord struct {
	UserID     string `structs:"user_id"`
	Followers  int64  `structs:"followers"`
	Activities int64  `structs:"activities"`
}

func (d *analyticsDomain) Influencers(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	followerCounts, err := d.followerRepo.CountPerFollowee(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers per user: %v", err)
		return nil, errorx.Unknown
	}

	activityCounts, err := d.activityRepo.CountPerUser(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count activities per user: %v", err)
		return nil, errorx.Unknown
	}

	activitiesByUser := map[string]int64{}
	for _, a := range activityCounts {
		activitiesByUser[a.UserID] = a.ActivityCount
	}

	records := []analytics.Record{}
	for _, f := range followerCounts {
		records = append(records, analytics.NewRecord(influencerRecord{
			UserID:     f.FolloweeID,
			Followers:  f.FollowerCount,
			Activities: activitiesByUser[f.FolloweeID],
		}))
	}

	return describe(records, ""), nil
}

type performanceRecord struct {
	ActivityType   string  `structs:"activity_type"`
	DistanceM      float64 `structs:"distance_m"`
	DurationSec    float64 `structs:"duration_sec"`
	ElevationGainM int     `structs:"elevation_gain_m"`
	SpeedMPerSec   float64 `structs:"speed_m_per_sec,omitempty"`
}

func (d *analyticsDomain) ActivityPerformance(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	activities, err := d.activityRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
		return nil, errorx.Unknown
	}

	records := []analytics.Record{}
	for i := range activities {
		record := performanceRecord{
			ActivityType:   string(activities[i].Type),
			DistanceM:      activities[i].DistanceM,
			DurationSec:    activities[i].DurationSec,
			ElevationGainM: activities[i].ElevationGainM,
		}

		if activities[i].DurationSec > 0 {
			record.SpeedMPerSec = activities[i].DistanceM / activities[i].DurationSec
		}

		records = append(records, analytics.NewRecord(record))
	}

	return describe(records, "activity_type"), nil
}

type userLevelRecord struct {
	Gender   string  `structs:"gender"`
	Age      int64   `structs:"age,omitempty"`
	WeightKg float64 `structs:"weight_kg,omitempty"`
	HeightCm float64 `structs:"height_cm,omitempty"`
}

func (d *analyticsDomain) UserLevels(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	profiles, err := d.profileRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get profiles: %v", err)
		return nil, errorx.Unknown
	}

	records := []analytics.Record{}
	for i := range profiles {
		record := userLevelRecord{Gender: "unknown"}
		if profiles[i].Gender.Valid {
			record.Gender = profiles[i].Gender.String
		}

		if profiles[i].Age.Valid {
			record.Age = profiles[i].Age.Int64
		}

		if profiles[i].WeightKg.Valid {
			record.WeightKg = profiles[i].WeightKg.Float64
		}

		if profiles[i].HeightCm.Valid {
			record.HeightCm = profiles[i].HeightCm.Float64
		}

		records = append(records, analytics.NewRecord(record))
	}

	return describe(records, "gender"), nil
}
