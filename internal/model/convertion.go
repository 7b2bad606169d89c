package model

import (
	"context"
	"sort"
	"time"

	"github.com/fanpassport/backend/internal/domain/taskvalidate"
	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/xcontext"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertClub(club *entity.Club) Club {
	if club == nil {
		return Club{}
	}

	return Club{
		ID:             club.ID,
		Name:           club.Name,
		ShortName:      club.ShortName,
		FullName:       club.FullName,
		Description:    string(club.Description),
		LogoURL:        club.LogoURL,
		PrimaryColor:   club.PrimaryColor,
		SecondaryColor: club.SecondaryColor,
		Slogan:         club.Slogan,
		Tagline:        club.Tagline,
	}
}

// ConvertExperience strips task secrets (quiz answers, expected QR values)
// before the experience leaves the backend.
func ConvertExperience(ctx context.Context, experience *entity.Experience) Experience {
	if experience == nil {
		return Experience{}
	}

	tasks := []Task{}
	for i, task := range experience.Tasks {
		data := map[string]any{}
		validator, err := taskvalidate.NewValidator(ctx, task)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot build validator of task %d: %v", task.ID, err)
		} else {
			data = validator.SanitizedData()
		}

		tasks = append(tasks, Task{
			ID:          task.ID,
			Index:       i,
			Name:        task.Name,
			Description: task.Description,
			Type:        string(task.Type),
			Data:        data,
		})
	}

	return Experience{
		ID:           experience.ID,
		ClubID:       experience.ClubID,
		Name:         experience.Name,
		Description:  string(experience.Description),
		IsActive:     experience.IsActive,
		RewardAmount: experience.RewardAmount,
		RewardToken:  experience.RewardToken,
		Tasks:        tasks,
	}
}

func ConvertProgress(progress *entity.UserProgress) UserProgress {
	if progress == nil {
		return UserProgress{CompletedTasks: []int{}, Rewards: []RewardEntry{}}
	}

	result := UserProgress{
		Started:        progress.Started,
		Completed:      progress.Completed,
		CompletedTasks: append([]int{}, progress.CompletedTasks...),
		Rewards:        ConvertRewards(progress.Rewards, false),
	}

	if progress.CompletionDate != nil {
		result.CompletionDate = progress.CompletionDate.Format(DefaultTimeLayout)
	}

	if progress.LastRewardClaimDate != nil {
		result.LastRewardClaimDate = progress.LastRewardClaimDate.Format(DefaultTimeLayout)
	}

	return result
}

// ConvertRewards flattens the reward map ordered by task index. With
// unclaimedOnly it keeps only the entries that are still claimable.
func ConvertRewards(rewards entity.RewardMap, unclaimedOnly bool) []RewardEntry {
	result := []RewardEntry{}
	for index, reward := range rewards {
		if unclaimedOnly && reward.Claimed {
			continue
		}

		entry := RewardEntry{
			TaskIndex: index,
			Amount:    reward.Amount,
			Token:     reward.Token,
			Claimed:   reward.Claimed,
		}

		if reward.ClaimedAt != nil {
			entry.ClaimedAt = reward.ClaimedAt.Format(DefaultTimeLayout)
		}

		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TaskIndex < result[j].TaskIndex
	})

	return result
}
