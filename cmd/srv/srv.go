package main

import (
	"net/http"

	"github.com/fanpassport/backend/config"
	"github.com/fanpassport/backend/internal/domain"
	"github.com/fanpassport/backend/internal/domain/statistic"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/fanpassport/backend/pkg/logger"
	"github.com/fanpassport/backend/pkg/router"
	"github.com/fanpassport/backend/pkg/storage"
	"github.com/fanpassport/backend/pkg/xredis"
	"gorm.io/gorm"
)

type srv struct {
	configs *config.Configs
	logger  logger.Logger

	db         *gorm.DB
	localStore *repository.LocalStore

	redisClient xredis.Client
	storage     storage.Storage

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	clubRepo       repository.ClubRepository
	experienceRepo repository.ExperienceRepository
	progressRepo   repository.ProgressRepository
	settingRepo    repository.SettingRepository

	dbProgressRepo repository.DatabaseProgressRepository

	leaderboard statistic.Leaderboard

	authDomain       domain.AuthDomain
	clubDomain       domain.ClubDomain
	experienceDomain domain.ExperienceDomain
	statisticDomain  domain.StatisticDomain
	fileDomain       domain.FileDomain

	router *router.Router
	server *http.Server
}
