package main

import (
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/stridelab/backend/internal/middleware"
	"github.com/stridelab/backend/pkg/router"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())
	s.router.Before(middleware.WithAuth())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/auth/register", s.authDomain.Register)
		router.POST(authRouter, "/auth/login", s.authDomain.Login)
		router.POST(authRouter, "/auth/refresh", s.authDomain.Refresh)
	}

	// Public read API
	publicRouter := s.router.Branch()
	{
		router.GET(publicRouter, "/users", s.userDomain.GetList)
		router.GET(publicRouter, "/users/{id}", s.userDomain.Get)

		router.GET(publicRouter, "/profiles", s.profileDomain.GetList)
		router.GET(publicRouter, "/profiles/{user_id}", s.profileDomain.Get)

		router.GET(publicRouter, "/activities", s.activityDomain.GetList)
		router.GET(publicRouter, "/activities/{id}", s.activityDomain.Get)

		router.GET(publicRouter, "/points", s.pointDomain.GetList)
		router.GET(publicRouter, "/points/{id}", s.pointDomain.Get)

		router.GET(publicRouter, "/comments", s.commentDomain.GetList)
		router.GET(publicRouter, "/comments/{id}", s.commentDomain.Get)
		router.GET(publicRouter, "/comments/{id}/replies", s.commentDomain.GetReplies)

		router.GET(publicRouter, "/kudos", s.kudosDomain.GetList)
		router.GET(publicRouter, "/kudos/{id}", s.kudosDomain.Get)

		router.GET(publicRouter, "/following", s.followerDomain.GetFollowing)
		router.GET(publicRouter, "/followers/{follower_id}/{followee_id}", s.followerDomain.Get)

		router.GET(publicRouter, "/user-stats", s.statsDomain.GetList)
		router.GET(publicRouter, "/user-stats/{user_id}/{year}/{month}", s.statsDomain.Get)

		router.GET(publicRouter, "/reports/global-stats", s.reportDomain.GetGlobalStats)

		router.GET(publicRouter, "/analytics/leaderboard", s.analyticsDomain.Leaderboard)
		router.GET(publicRouter, "/analytics/social-engagement", s.analyticsDomain.SocialEngagement)
		router.GET(publicRouter, "/analytics/monthly-trends", s.analyticsDomain.MonthlyTrends)
		router.GET(publicRouter, "/analytics/influencers", s.analyticsDomain.Influencers)
		router.GET(publicRouter, "/analytics/activity-performance", s.analyticsDomain.ActivityPerformance)
		router.GET(publicRouter, "/analytics/user-levels", s.analyticsDomain.UserLevels)
	}

	// Write API, needs an authenticated caller.
	authedRouter := s.router.Branch()
	authedRouter.Before(middleware.Authenticate())
	{
		router.PUT(authedRouter, "/users/{id}", s.userDomain.Update)
		router.PATCH(authedRouter, "/users/{id}", s.userDomain.Update)
		router.DELETE(authedRouter, "/users/{id}", s.userDomain.Delete)

		router.POST(authedRouter, "/profiles", s.profileDomain.Create)
		router.PUT(authedRouter, "/profiles/{user_id}", s.profileDomain.Update)
		router.PATCH(authedRouter, "/profiles/{user_id}", s.profileDomain.Update)
		router.DELETE(authedRouter, "/profiles/{user_id}", s.profileDomain.Delete)

		router.POST(authedRouter, "/activities", s.activityDomain.Create)
		router.PUT(authedRouter, "/activities/{id}", s.activityDomain.Update)
		router.PATCH(authedRouter, "/activities/{id}", s.activityDomain.Update)
		router.DELETE(authedRouter, "/activities/{id}", s.activityDomain.Delete)

		router.POST(authedRouter, "/points", s.pointDomain.Create)
		router.PUT(authedRouter, "/points/{id}", s.pointDomain.Update)
		router.PATCH(authedRouter, "/points/{id}", s.pointDomain.Update)
		router.DELETE(authedRouter, "/points/{id}", s.pointDomain.Delete)

		router.POST(authedRouter, "/comments", s.commentDomain.Create)
		router.PUT(authedRouter, "/comments/{id}", s.commentDomain.Update)
		router.DELETE(authedRouter, "/comments/{id}", s.commentDomain.Delete)

		router.POST(authedRouter, "/kudos", s.kudosDomain.Create)
		router.DELETE(authedRouter, "/kudos/{id}", s.kudosDomain.Delete)

		router.POST(authedRouter, "/followers", s.followerDomain.Create)
		router.DELETE(authedRouter, "/followers/{followee_id}", s.followerDomain.Delete)

		router.PUT(authedRouter, "/user-stats", s.statsDomain.Upsert)
		router.DELETE(authedRouter, "/user-stats/{year}/{month}", s.statsDomain.Delete)

		router.GET(authedRouter, "/external/clients", s.clientsDomain.GetAll)
		router.GET(authedRouter, "/external/clients/{id}", s.clientsDomain.Get)
		router.POST(authedRouter, "/external/clients", s.clientsDomain.Create)
		router.PUT(authedRouter, "/external/clients/{id}", s.clientsDomain.Update)
		router.DELETE(authedRouter, "/external/clients/{id}", s.clientsDomain.Delete)
	}
}
