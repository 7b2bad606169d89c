package domain

import (
	"context"

	"github.com/fanpassport/backend/internal/domain/statistic"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/pkg/math"
)

type StatisticDomain interface {
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type statisticDomain struct {
	leaderboard statistic.Leaderboard
}

func NewStatisticDomain(leaderboard statistic.Leaderboard) StatisticDomain {
	return &statisticDomain{leaderboard: leaderboard}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if req.ClubID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty club id")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	req.Limit = math.MinInt(req.Limit, apiCfg.MaxLimit)

	leaderboard, err := d.leaderboard.GetLeaderboard(ctx, req.ClubID, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	return &model.GetLeaderboardResponse{Leaderboard: leaderboard}, nil
}
