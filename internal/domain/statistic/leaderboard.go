package statistic

import (
	"context"
	"fmt"

	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/fanpassport/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

// Leaderboard ranks users of a club by the number of tasks they completed
// across all experiences of that club. The ranking lives in a redis sorted
// set which is rebuilt lazily from the database whenever the key is missing.
type Leaderboard interface {
	GetLeaderboard(
		ctx context.Context, clubID string, offset, limit int,
	) ([]model.UserStatistic, error)

	GetRank(ctx context.Context, clubID, userAddress string) (uint64, error)

	ChangeTaskLeaderboard(ctx context.Context, value int64, clubID, userAddress string) error
}

type leaderboard struct {
	experienceRepo repository.ExperienceRepository
	progressRepo   repository.ProgressStatisticRepository
	redisClient    xredis.Client
}

func New(
	experienceRepo repository.ExperienceRepository,
	progressRepo repository.ProgressStatisticRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{
		experienceRepo: experienceRepo,
		progressRepo:   progressRepo,
		redisClient:    redisClient,
	}
}

func redisKeyTaskLeaderboard(clubID string) string {
	return fmt.Sprintf("leaderboard:tasks:%s", clubID)
}

func (l *leaderboard) GetLeaderboard(
	ctx context.Context, clubID string, offset, limit int,
) ([]model.UserStatistic, error) {
	key := redisKeyTaskLeaderboard(clubID)
	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, clubID); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	leaderboard := []model.UserStatistic{}
	for i, z := range results {
		leaderboard = append(leaderboard, model.UserStatistic{
			UserAddress: z.Member.(string),
			Value:       int(z.Score),
			CurrentRank: offset + i + 1,
		})
	}

	return leaderboard, nil
}

func (l *leaderboard) GetRank(
	ctx context.Context, clubID, userAddress string,
) (uint64, error) {
	key := redisKeyTaskLeaderboard(clubID)
	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return 0, errorx.Unknown
	}

	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, clubID); err != nil {
			return 0, err
		}
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, repository.NormalizeAddress(userAddress))
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangeTaskLeaderboard(
	ctx context.Context, value int64, clubID, userAddress string,
) error {
	key := redisKeyTaskLeaderboard(clubID)
	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// If the key didn't exist in redis, the next read rebuilds it from the
	// database, which already contains this change. No need to update.
	if !ok {
		return nil
	}

	err = l.redisClient.ZIncrBy(ctx, key, value, repository.NormalizeAddress(userAddress))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}

	return nil
}

func (l *leaderboard) loadLeaderboardFromDB(ctx context.Context, clubID string) error {
	experiences, err := l.experienceRepo.GetListByClub(ctx, clubID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load experiences of club %s: %v", clubID, err)
		return errorx.Unknown
	}

	experienceIDs := []int64{}
	for _, experience := range experiences {
		experienceIDs = append(experienceIDs, experience.ID)
	}

	if len(experienceIDs) == 0 {
		return nil
	}

	records, err := l.progressRepo.GetListByExperiences(ctx, experienceIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load statistic from database: %v", err)
		return errorx.Unknown
	}

	counts := map[string]int{}
	for _, record := range records {
		counts[record.UserAddress] += len(record.CompletedTasks)
	}

	key := redisKeyTaskLeaderboard(clubID)
	for userAddress, count := range counts {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{Member: userAddress, Score: float64(count)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
