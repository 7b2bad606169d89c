package main

import (
	"context"

	"github.com/fanpassport/backend/config"
	"github.com/fanpassport/backend/internal/domain"
	"github.com/fanpassport/backend/internal/domain/statistic"
	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/middleware"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/fanpassport/backend/pkg/logger"
	"github.com/fanpassport/backend/pkg/router"
	"github.com/fanpassport/backend/pkg/storage"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/fanpassport/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func (s *srv) loadConfig(ct *cli.Context) {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = &cfg
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

// context returns the base context every startup call runs with.
func (s *srv) context() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	return ctx
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := entity.MigrateTable(s.db); err != nil {
		panic(err)
	}

	if s.configs.LocalCache.Enabled {
		s.localStore, err = repository.OpenLocalStore(s.configs.LocalCache.Path)
		if err != nil {
			s.logger.Warnf("Cannot open the local cache, continue without it: %v", err)
			s.localStore = nil
		}
	}
}

func (s *srv) loadRedis() {
	redisClient, err := xredis.NewClient(s.context(), s.configs.Redis)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadAuthenticator() {
	s.accessTokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		s.configs.Auth.AccessToken)
}

func (s *srv) loadRepos() {
	s.clubRepo = repository.NewClubRepository(s.db)
	s.settingRepo = repository.NewSettingRepository(s.db)
	s.dbProgressRepo = repository.NewProgressRepository(s.db)

	var localProgress repository.ProgressRepository
	if s.localStore != nil {
		localProgress = s.localStore.Progress()
	}

	s.progressRepo = repository.NewHybridProgressRepository(
		s.dbProgressRepo,
		localProgress,
		repository.NewMemoryProgressRepository(),
	)

	s.experienceRepo = repository.NewHybridExperienceRepository(
		repository.NewExperienceRepository(s.db),
		s.localStore,
	)
}

func (s *srv) loadDomains() {
	s.leaderboard = statistic.New(s.experienceRepo, s.dbProgressRepo, s.redisClient)

	s.authDomain = domain.NewAuthDomain(s.accessTokenEngine)
	s.clubDomain = domain.NewClubDomain(s.clubRepo, s.settingRepo)
	s.experienceDomain = domain.NewExperienceDomain(s.experienceRepo, s.progressRepo, s.leaderboard)
	s.statisticDomain = domain.NewStatisticDomain(s.leaderboard)
	s.fileDomain = domain.NewFileDomain(s.storage)
}

func (s *srv) loadRouter() {
	s.router = router.New(*s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public API
	publicRouter := s.router.Branch()
	{
		router.POST(publicRouter, "/login", s.authDomain.Login)

		router.GET(publicRouter, "/getClubs", s.clubDomain.GetClubs)
		router.GET(publicRouter, "/getClub", s.clubDomain.GetClub)
		router.GET(publicRouter, "/getCurrentClub", s.clubDomain.GetCurrentClub)
		router.POST(publicRouter, "/setCurrentClub", s.clubDomain.SetCurrentClub)

		router.GET(publicRouter, "/getExperiences", s.experienceDomain.GetExperiences)
		router.GET(publicRouter, "/getExperience", s.experienceDomain.GetExperience)

		router.GET(publicRouter, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
	}

	// These following APIs need authentication with an access token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier(s.accessTokenEngine)
	authRouter.Before(authVerifier.Middleware())
	{
		router.POST(authRouter, "/startExperience", s.experienceDomain.Start)
		router.POST(authRouter, "/completeTask", s.experienceDomain.CompleteTask)
		router.GET(authRouter, "/getProgress", s.experienceDomain.GetProgress)
		router.GET(authRouter, "/isTaskCompleted", s.experienceDomain.IsTaskCompleted)

		router.GET(authRouter, "/getRewards", s.experienceDomain.GetRewards)
		router.POST(authRouter, "/claimTaskReward", s.experienceDomain.ClaimTaskReward)
		router.POST(authRouter, "/claimExperienceReward", s.experienceDomain.ClaimExperienceReward)

		router.POST(authRouter, "/uploadPhoto", s.fileDomain.UploadPhoto)
	}
}
