package domain

import (
	"context"
	"errors"
	"time"

	"github.com/fanpassport/backend/internal/domain/statistic"
	"github.com/fanpassport/backend/internal/domain/taskvalidate"
	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ExperienceDomain interface {
	GetExperiences(context.Context, *model.GetExperiencesRequest) (*model.GetExperiencesResponse, error)
	GetExperience(context.Context, *model.GetExperienceRequest) (*model.GetExperienceResponse, error)
	Start(context.Context, *model.StartExperienceRequest) (*model.StartExperienceResponse, error)
	CompleteTask(context.Context, *model.CompleteTaskRequest) (*model.CompleteTaskResponse, error)
	GetProgress(context.Context, *model.GetProgressRequest) (*model.GetProgressResponse, error)
	IsTaskCompleted(context.Context, *model.IsTaskCompletedRequest) (*model.IsTaskCompletedResponse, error)
	GetRewards(context.Context, *model.GetRewardsRequest) (*model.GetRewardsResponse, error)
	ClaimTaskReward(context.Context, *model.ClaimTaskRewardRequest) (*model.ClaimTaskRewardResponse, error)
	ClaimExperienceReward(context.Context, *model.ClaimExperienceRewardRequest) (*model.ClaimExperienceRewardResponse, error)
}

type experienceDomain struct {
	experienceRepo repository.ExperienceRepository
	progressRepo   repository.ProgressRepository
	leaderboard    statistic.Leaderboard
}

func NewExperienceDomain(
	experienceRepo repository.ExperienceRepository,
	progressRepo repository.ProgressRepository,
	leaderboard statistic.Leaderboard,
) ExperienceDomain {
	return &experienceDomain{
		experienceRepo: experienceRepo,
		progressRepo:   progressRepo,
		leaderboard:    leaderboard,
	}
}

func (d *experienceDomain) GetExperiences(
	ctx context.Context, req *model.GetExperiencesRequest,
) (*model.GetExperiencesResponse, error) {
	var experiences []entity.Experience
	var err error
	if req.ClubID != "" {
		experiences, err = d.experienceRepo.GetListByClub(ctx, req.ClubID)
	} else {
		experiences, err = d.experienceRepo.GetList(ctx)
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get experiences: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Experience{}
	for i := range experiences {
		result = append(result, model.ConvertExperience(ctx, &experiences[i]))
	}

	return &model.GetExperiencesResponse{Experiences: result}, nil
}

func (d *experienceDomain) GetExperience(
	ctx context.Context, req *model.GetExperienceRequest,
) (*model.GetExperienceResponse, error) {
	experience, err := d.experienceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found experience")
		}

		xcontext.Logger(ctx).Errorf("Cannot get experience: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetExperienceResponse(model.ConvertExperience(ctx, experience))
	return &resp, nil
}

func (d *experienceDomain) Start(
	ctx context.Context, req *model.StartExperienceRequest,
) (*model.StartExperienceResponse, error) {
	userAddress := xcontext.RequestUserID(ctx)

	experience, err := d.loadExperience(ctx, req.ExperienceID)
	if err != nil {
		return nil, err
	}

	if experience == nil {
		return &model.StartExperienceResponse{Success: false}, nil
	}

	alreadyStarted := false
	_, err = d.progressRepo.Update(ctx, userAddress, experience.ID,
		func(progress *entity.UserProgress) (bool, error) {
			// Starting twice keeps the record untouched and is answered with
			// an unsuccessful response.
			if progress.Started {
				alreadyStarted = true
				return false, nil
			}

			progress.Started = true
			return true, nil
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	return &model.StartExperienceResponse{Success: !alreadyStarted}, nil
}

func (d *experienceDomain) CompleteTask(
	ctx context.Context, req *model.CompleteTaskRequest,
) (*model.CompleteTaskResponse, error) {
	userAddress := xcontext.RequestUserID(ctx)

	experience, err := d.loadExperience(ctx, req.ExperienceID)
	if err != nil {
		return nil, err
	}

	if experience == nil {
		return &model.CompleteTaskResponse{
			Success: false, Progress: model.ConvertProgress(nil),
		}, nil
	}

	if req.TaskIndex < 0 || req.TaskIndex >= len(experience.Tasks) {
		xcontext.Logger(ctx).Debugf("Out of range task index %d of experience %d",
			req.TaskIndex, experience.ID)
		return d.rejectCompletion(ctx, userAddress, experience.ID)
	}

	task := experience.Tasks[req.TaskIndex]
	validator, err := taskvalidate.NewValidator(ctx, task)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot build validator of task %d: %v", task.ID, err)
		return nil, errorx.Unknown
	}

	ok, err := validator.Validate(ctx, req.Input)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot validate submission of task %d: %v", task.ID, err)
		return nil, errorx.Unknown
	}

	if !ok {
		return d.rejectCompletion(ctx, userAddress, experience.ID)
	}

	alreadyCompleted := false
	progress, err := d.progressRepo.Update(ctx, userAddress, experience.ID,
		func(progress *entity.UserProgress) (bool, error) {
			// Completing a task also starts the experience when the user
			// skipped the explicit start call.
			changed := false
			if !progress.Started {
				progress.Started = true
				changed = true
			}

			if slices.Contains(progress.CompletedTasks, req.TaskIndex) {
				alreadyCompleted = true
				return changed, nil
			}

			if progress.Rewards == nil {
				progress.Rewards = entity.RewardMap{}
			}

			progress.CompletedTasks = append(progress.CompletedTasks, req.TaskIndex)
			progress.Rewards[req.TaskIndex] = taskReward(experience, req.TaskIndex)

			if len(progress.CompletedTasks) == len(experience.Tasks) && !progress.Completed {
				now := time.Now()
				progress.Completed = true
				progress.CompletionDate = &now
			}

			return true, nil
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	if !alreadyCompleted {
		err := d.leaderboard.ChangeTaskLeaderboard(ctx, 1, experience.ClubID, userAddress)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot change task leaderboard: %v", err)
		}
	}

	// A task completes at most once; the repeated call reports the untouched
	// progress without claiming success.
	return &model.CompleteTaskResponse{
		Success:  !alreadyCompleted,
		Progress: model.ConvertProgress(progress),
	}, nil
}

func (d *experienceDomain) GetProgress(
	ctx context.Context, req *model.GetProgressRequest,
) (*model.GetProgressResponse, error) {
	progress, err := d.progressRepo.Get(ctx, xcontext.RequestUserID(ctx), req.ExperienceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	resp := model.GetProgressResponse(model.ConvertProgress(progress))
	return &resp, nil
}

func (d *experienceDomain) IsTaskCompleted(
	ctx context.Context, req *model.IsTaskCompletedRequest,
) (*model.IsTaskCompletedResponse, error) {
	progress, err := d.progressRepo.Get(ctx, xcontext.RequestUserID(ctx), req.ExperienceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	completed := progress != nil && slices.Contains(progress.CompletedTasks, req.TaskIndex)
	return &model.IsTaskCompletedResponse{Completed: completed}, nil
}

func (d *experienceDomain) GetRewards(
	ctx context.Context, req *model.GetRewardsRequest,
) (*model.GetRewardsResponse, error) {
	progress, err := d.progressRepo.Get(ctx, xcontext.RequestUserID(ctx), req.ExperienceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	if progress == nil {
		return &model.GetRewardsResponse{Rewards: []model.RewardEntry{}}, nil
	}

	return &model.GetRewardsResponse{
		Rewards: model.ConvertRewards(progress.Rewards, true),
	}, nil
}

func (d *experienceDomain) ClaimTaskReward(
	ctx context.Context, req *model.ClaimTaskRewardRequest,
) (*model.ClaimTaskRewardResponse, error) {
	success := false
	_, err := d.progressRepo.Update(ctx, xcontext.RequestUserID(ctx), req.ExperienceID,
		func(progress *entity.UserProgress) (bool, error) {
			reward, ok := progress.Rewards[req.TaskIndex]
			if !ok || reward.Claimed {
				return false, nil
			}

			now := time.Now()
			reward.Claimed = true
			reward.ClaimedAt = &now
			progress.Rewards[req.TaskIndex] = reward

			success = true
			return true, nil
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	return &model.ClaimTaskRewardResponse{Success: success}, nil
}

func (d *experienceDomain) ClaimExperienceReward(
	ctx context.Context, req *model.ClaimExperienceRewardRequest,
) (*model.ClaimExperienceRewardResponse, error) {
	success := false
	_, err := d.progressRepo.Update(ctx, xcontext.RequestUserID(ctx), req.ExperienceID,
		func(progress *entity.UserProgress) (bool, error) {
			// The terminal claim needs a fully completed experience and fires
			// at most once. The caller mints against this record afterwards.
			if !progress.Completed || progress.LastRewardClaimDate != nil {
				return false, nil
			}

			now := time.Now()
			progress.LastRewardClaimDate = &now

			success = true
			return true, nil
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	return &model.ClaimExperienceRewardResponse{Success: success}, nil
}

// loadExperience returns (nil, nil) when the experience does not exist or is
// not active, so write operations can answer with an unsuccessful response
// instead of an error.
func (d *experienceDomain) loadExperience(
	ctx context.Context, id int64,
) (*entity.Experience, error) {
	experience, err := d.experienceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Debugf("Not found experience %d", id)
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get experience: %v", err)
		return nil, errorx.Unknown
	}

	if !experience.IsActive {
		xcontext.Logger(ctx).Debugf("Experience %d is not active", id)
		return nil, nil
	}

	return experience, nil
}

// rejectCompletion answers a failed submission with the untouched progress
// record.
func (d *experienceDomain) rejectCompletion(
	ctx context.Context, userAddress string, experienceID int64,
) (*model.CompleteTaskResponse, error) {
	progress, err := d.progressRepo.Get(ctx, userAddress, experienceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get progress: %v", err)
		return nil, errorx.New(errorx.StorageUnavailable, "Progress store unavailable")
	}

	return &model.CompleteTaskResponse{
		Success:  false,
		Progress: model.ConvertProgress(progress),
	}, nil
}

// taskReward is the per-task share of the experience reward. The amount is
// divided evenly; the division remainder goes to the last task so the shares
// always add up to the full reward.
func taskReward(experience *entity.Experience, taskIndex int) entity.RewardEntry {
	count := int64(len(experience.Tasks))
	amount := experience.RewardAmount / count
	if taskIndex == len(experience.Tasks)-1 {
		amount += experience.RewardAmount % count
	}

	return entity.RewardEntry{Amount: amount, Token: experience.RewardToken}
}
