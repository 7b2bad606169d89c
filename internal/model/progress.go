package model

type RewardEntry struct {
	TaskIndex int    `json:"task_index"`
	Amount    int64  `json:"amount"`
	Token     string `json:"token"`
	Claimed   bool   `json:"claimed"`
	ClaimedAt string `json:"claimed_at,omitempty"`
}

type UserProgress struct {
	Started             bool          `json:"started"`
	Completed           bool          `json:"completed"`
	CompletedTasks      []int         `json:"completed_tasks"`
	CompletionDate      string        `json:"completion_date,omitempty"`
	Rewards             []RewardEntry `json:"rewards"`
	LastRewardClaimDate string        `json:"last_reward_claim_date,omitempty"`
}

type StartExperienceRequest struct {
	ExperienceID int64 `json:"experience_id"`
}

type StartExperienceResponse struct {
	Success bool `json:"success"`
}

type CompleteTaskRequest struct {
	ExperienceID int64  `json:"experience_id"`
	TaskIndex    int    `json:"task_index"`
	Input        string `json:"input"`
}

type CompleteTaskResponse struct {
	Success  bool         `json:"success"`
	Progress UserProgress `json:"progress"`
}

type GetProgressRequest struct {
	ExperienceID int64 `json:"experience_id"`
}

type GetProgressResponse UserProgress

type IsTaskCompletedRequest struct {
	ExperienceID int64 `json:"experience_id"`
	TaskIndex    int   `json:"task_index"`
}

type IsTaskCompletedResponse struct {
	Completed bool `json:"completed"`
}

type GetRewardsRequest struct {
	ExperienceID int64 `json:"experience_id"`
}

type GetRewardsResponse struct {
	Rewards []RewardEntry `json:"rewards"`
}

type ClaimTaskRewardRequest struct {
	ExperienceID int64 `json:"experience_id"`
	TaskIndex    int   `json:"task_index"`
}

type ClaimTaskRewardResponse struct {
	Success bool `json:"success"`
}

type ClaimExperienceRewardRequest struct {
	ExperienceID int64 `json:"experience_id"`
}

type ClaimExperienceRewardResponse struct {
	Success bool `json:"success"`
}
