package model

type UserStatistic struct {
	UserAddress string `json:"user_address"`
	Value       int    `json:"value"`
	CurrentRank int    `json:"current_rank"`
}

type GetLeaderboardRequest struct {
	ClubID string `json:"club_id"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []UserStatistic `json:"leaderboard"`
}
