package model

type Task struct {
	ID          int64          `json:"id"`
	Index       int            `json:"index"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Data        map[string]any `json:"data"`
}

type Experience struct {
	ID           int64  `json:"id"`
	ClubID       string `json:"club_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"is_active"`
	RewardAmount int64  `json:"reward_amount"`
	RewardToken  string `json:"reward_token"`
	Tasks        []Task `json:"tasks"`
}

type GetExperiencesRequest struct {
	ClubID string `json:"club_id"`
}

type GetExperiencesResponse struct {
	Experiences []Experience `json:"experiences"`
}

type GetExperienceRequest struct {
	ID int64 `json:"id"`
}

type GetExperienceResponse Experience
