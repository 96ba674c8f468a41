package model

type ActivitiesOverview struct {
	TotalActivities      int64    `json:"total_activities"`
	TotalDistanceMeters  float64  `json:"total_distance_meters"`
	TotalDurationSeconds float64  `json:"total_duration_seconds"`
	AverageElevationGain *float64 `json:"average_elevation_gain"`
}

type ProfilesOverview struct {
	TotalProfiles   int64    `json:"total_profiles"`
	AverageAge      *float64 `json:"average_age"`
	AverageWeightKg *float64 `json:"average_weight_kg"`
	AverageHeightCm *float64 `json:"average_height_cm"`
}

type UsersOverview struct {
	TotalUsers        int64 `json:"total_users"`
	UsersWithProfiles int64 `json:"users_with_profiles"`
}

type ActivityEngagement struct {
	ActivityID string `json:"activity_id"`
	Count      int64  `json:"count"`
}

type UserFollowerCount struct {
	UserID string `json:"user_id"`
	Count  int64  `json:"count"`
}

type LeaderboardEntry struct {
	Name          string  `json:"name"`
	TotalDistance float64 `json:"total_distance"`
}

type GetGlobalStatsReportRequest struct{}

type GetGlobalStatsReportResponse struct {
	ActivitiesOverview        ActivitiesOverview   `json:"activities_overview"`
	ProfilesOverview          ProfilesOverview     `json:"profiles_overview"`
	UsersOverview             UsersOverview        `json:"users_overview"`
	MostCommentedActivities   []ActivityEngagement `json:"most_commented_activities"`
	MostLikedActivities       []ActivityEngagement `json:"most_liked_activities"`
	MostFollowedUsers         []UserFollowerCount  `json:"most_followed_users"`
	GlobalDistanceLeaderboard []LeaderboardEntry   `json:"global_distance_leaderboard"`
}
