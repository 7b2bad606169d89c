package testutil

import (
	"context"

	"github.com/fanpassport/backend/internal/model"
)

type MockLeaderboard struct {
	GetLeaderboardFunc func(
		ctx context.Context, clubID string, offset, limit int,
	) ([]model.UserStatistic, error)

	GetRankFunc func(ctx context.Context, clubID, userAddress string) (uint64, error)

	ChangeTaskLeaderboardFunc func(
		ctx context.Context, value int64, clubID, userAddress string,
	) error
}

func (m *MockLeaderboard) GetLeaderboard(
	ctx context.Context, clubID string, offset, limit int,
) ([]model.UserStatistic, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, clubID, offset, limit)
	}

	return nil, nil
}

func (m *MockLeaderboard) GetRank(
	ctx context.Context, clubID, userAddress string,
) (uint64, error) {
	if m.GetRankFunc != nil {
		return m.GetRankFunc(ctx, clubID, userAddress)
	}

	return 0, nil
}

func (m *MockLeaderboard) ChangeTaskLeaderboard(
	ctx context.Context, value int64, clubID, userAddress string,
) error {
	if m.ChangeTaskLeaderboardFunc != nil {
		return m.ChangeTaskLeaderboardFunc(ctx, value, clubID, userAddress)
	}

	return nil
}
