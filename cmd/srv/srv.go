package main

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/stridelab/backend/config"
	"github.com/stridelab/backend/internal/client"
	"github.com/stridelab/backend/internal/domain"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/api"
	"github.com/stridelab/backend/pkg/logger"
	"github.com/stridelab/backend/pkg/router"
	"github.com/stridelab/backend/pkg/xcontext"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	userRepo         repository.UserRepository
	profileRepo      repository.ProfileRepository
	activityRepo     repository.ActivityRepository
	pointRepo        repository.ActivityPointRepository
	commentRepo      repository.CommentRepository
	kudosRepo        repository.KudosRepository
	followerRepo     repository.FollowerRepository
	statsRepo        repository.UserMonthlyStatsRepository
	refreshTokenRepo repository.RefreshTokenRepository

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	profileDomain   domain.ProfileDomain
	activityDomain  domain.ActivityDomain
	pointDomain     domain.ActivityPointDomain
	commentDomain   domain.CommentDomain
	kudosDomain     domain.KudosDomain
	followerDomain  domain.FollowerDomain
	statsDomain     domain.UserStatsDomain
	reportDomain    domain.ReportDomain
	analyticsDomain domain.AnalyticsDomain
	clientsDomain   domain.ClientsDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	godotenv.Load()

	var err error
	s.configs, err = config.Load()
	if err != nil {
		panic(err)
	}

	s.logger = logger.NewLogger(logger.INFO)
	s.ctx = cctx.Context
	s.ctx = xcontext.WithConfigs(s.ctx, *s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.profileRepo = repository.NewProfileRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.pointRepo = repository.NewActivityPointRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.kudosRepo = repository.NewKudosRepository()
	s.followerRepo = repository.NewFollowerRepository()
	s.statsRepo = repository.NewUserMonthlyStatsRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
}

func (s *srv) loadDomains() {
	idGenerator, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	clientsCaller := client.NewClientsCaller(api.NewGenerator(s.configs.Sync.URL))

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.profileDomain = domain.NewProfileDomain(s.profileRepo, s.userRepo)
	s.activityDomain = domain.NewActivityDomain(s.activityRepo)
	s.pointDomain = domain.NewActivityPointDomain(s.pointRepo, s.activityRepo, idGenerator)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.activityRepo)
	s.kudosDomain = domain.NewKudosDomain(s.kudosRepo, s.activityRepo)
	s.followerDomain = domain.NewFollowerDomain(s.followerRepo, s.userRepo)
	s.statsDomain = domain.NewUserStatsDomain(s.statsRepo)
	s.reportDomain = domain.NewReportDomain(
		s.userRepo, s.profileRepo, s.activityRepo, s.commentRepo,
		s.kudosRepo, s.followerRepo, s.statsRepo,
	)
	s.analyticsDomain = domain.NewAnalyticsDomain(
		s.profileRepo, s.activityRepo, s.commentRepo,
		s.kudosRepo, s.followerRepo, s.statsRepo,
	)
	s.clientsDomain = domain.NewClientsDomain(clientsCaller)
}
