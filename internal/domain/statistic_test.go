package domain

import (
	"testing"

	"github.com/fanpassport/backend/internal/domain/statistic"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	db := testutil.CreateFixtureDb()
	redisClient := testutil.NewMockRedisClient()

	experienceRepo := repository.NewExperienceRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	leaderboard := statistic.New(experienceRepo, progressRepo, redisClient)

	engine := NewExperienceDomain(experienceRepo, progressRepo, leaderboard)

	// alice completes two tasks, bob completes one.
	alice := testutil.MockContextWithUserAddress("0xaaaa")
	for _, task := range []model.CompleteTaskRequest{
		{ExperienceID: testutil.Experience1ID, TaskIndex: 0, Input: "1970"},
		{ExperienceID: testutil.Experience1ID, TaskIndex: 1},
	} {
		task := task
		resp, err := engine.CompleteTask(alice, &task)
		require.NoError(t, err)
		require.True(t, resp.Success)
	}

	bob := testutil.MockContextWithUserAddress("0xbbbb")
	resp, err := engine.CompleteTask(bob, &model.CompleteTaskRequest{
		ExperienceID: testutil.Experience2ID,
		TaskIndex:    1,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	statisticDomain := NewStatisticDomain(leaderboard)
	board, err := statisticDomain.GetLeaderboard(alice, &model.GetLeaderboardRequest{
		ClubID: testutil.Club1ID,
	})
	require.NoError(t, err)
	require.Equal(t, []model.UserStatistic{
		{UserAddress: "0xaaaa", Value: 2, CurrentRank: 1},
		{UserAddress: "0xbbbb", Value: 1, CurrentRank: 2},
	}, board.Leaderboard)

	// Further completions update the existing redis key incrementally.
	resp, err = engine.CompleteTask(bob, &model.CompleteTaskRequest{
		ExperienceID: testutil.Experience2ID,
		TaskIndex:    0,
		Input:        "museum-secret",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	resp, err = engine.CompleteTask(bob, &model.CompleteTaskRequest{
		ExperienceID: testutil.Experience2ID,
		TaskIndex:    2,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	board, err = statisticDomain.GetLeaderboard(alice, &model.GetLeaderboardRequest{
		ClubID: testutil.Club1ID,
	})
	require.NoError(t, err)
	require.Equal(t, "0xbbbb", board.Leaderboard[0].UserAddress)
	require.Equal(t, 3, board.Leaderboard[0].Value)

	// Rank lookups normalize the address like the store does.
	rank, err := leaderboard.GetRank(alice, testutil.Club1ID, "0xAAAA")
	require.NoError(t, err)
	require.Equal(t, uint64(2), rank)
}

func Test_statisticDomain_GetLeaderboard_limits(t *testing.T) {
	db := testutil.CreateFixtureDb()
	leaderboard := statistic.New(
		repository.NewExperienceRepository(db),
		repository.NewProgressRepository(db),
		testutil.NewMockRedisClient(),
	)

	ctx := testutil.MockContext()
	statisticDomain := NewStatisticDomain(leaderboard)

	_, err := statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.Error(t, err)

	_, err = statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		ClubID: testutil.Club1ID,
		Limit:  -1,
	})
	require.Error(t, err)

	board, err := statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		ClubID: testutil.Club1ID,
		Limit:  1000,
	})
	require.NoError(t, err)
	require.Empty(t, board.Leaderboard)
}
