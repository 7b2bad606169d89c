package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_progressRepository_GetAndPut(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewProgressRepository(testutil.CreateFixtureDb())

	// Absence is a valid state.
	progress, err := repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.NoError(t, err)
	require.Nil(t, progress)

	now := time.Now()
	err = repo.Put(ctx, &entity.UserProgress{
		UserAddress:    "0xAbCd",
		ExperienceID:   testutil.Experience1ID,
		Started:        true,
		Completed:      true,
		CompletedTasks: entity.Array[int]{1, 0},
		CompletionDate: &now,
		Rewards: entity.RewardMap{
			0: {Amount: 50, Token: "FAN"},
			1: {Amount: 50, Token: "FAN", Claimed: true, ClaimedAt: &now},
		},
	})
	require.NoError(t, err)

	// Lookups are case-insensitive on the address.
	progress, err = repo.Get(ctx, "0xABCD", testutil.Experience1ID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	require.Equal(t, "0xabcd", progress.UserAddress)
	require.Equal(t, entity.Array[int]{1, 0}, progress.CompletedTasks)
	require.Len(t, progress.Rewards, 2)
	require.True(t, progress.Rewards[1].Claimed)
	require.Equal(t, int64(50), progress.Rewards[0].Amount)
}

func Test_progressRepository_Update(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewProgressRepository(testutil.CreateFixtureDb())

	// Updating a missing record starts from a zero-value one.
	progress, err := repo.Update(ctx, "0xabcd", testutil.Experience1ID,
		func(progress *entity.UserProgress) (bool, error) {
			require.False(t, progress.Started)
			progress.Started = true
			return true, nil
		})
	require.NoError(t, err)
	require.True(t, progress.Started)

	stored, err := repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, stored.Started)

	// A no-change call does not write, but still returns the record.
	progress, err = repo.Update(ctx, "0xabcd", testutil.Experience1ID,
		func(progress *entity.UserProgress) (bool, error) {
			return false, nil
		})
	require.NoError(t, err)
	require.True(t, progress.Started)

	// An fn error aborts without writing.
	rejection := errors.New("not allowed")
	_, err = repo.Update(ctx, "0xabcd", testutil.Experience1ID,
		func(progress *entity.UserProgress) (bool, error) {
			progress.Completed = true
			return true, rejection
		})
	require.ErrorIs(t, err, rejection)

	stored, err = repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.NoError(t, err)
	require.False(t, stored.Completed)
}

func Test_memoryProgressRepository_isolation(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewMemoryProgressRepository()

	_, err := repo.Update(ctx, "0xabcd", testutil.Experience1ID,
		func(progress *entity.UserProgress) (bool, error) {
			progress.Started = true
			progress.CompletedTasks = append(progress.CompletedTasks, 0)
			return true, nil
		})
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	progress, err := repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.NoError(t, err)
	progress.CompletedTasks = append(progress.CompletedTasks, 1)
	progress.Rewards[0] = entity.RewardEntry{Amount: 1}

	stored, err := repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.NoError(t, err)
	require.Equal(t, entity.Array[int]{0}, stored.CompletedTasks)
	require.Empty(t, stored.Rewards)
}

type failingProgressRepository struct {
	err error
}

func (r failingProgressRepository) Get(
	ctx context.Context, userAddress string, experienceID int64,
) (*entity.UserProgress, error) {
	return nil, r.err
}

func (r failingProgressRepository) Put(ctx context.Context, progress *entity.UserProgress) error {
	return r.err
}

func (r failingProgressRepository) Update(
	ctx context.Context,
	userAddress string,
	experienceID int64,
	fn func(progress *entity.UserProgress) (bool, error),
) (*entity.UserProgress, error) {
	return nil, r.err
}

func Test_hybridProgressRepository_fallback(t *testing.T) {
	ctx := testutil.MockContext()
	down := failingProgressRepository{err: errors.New("connection refused")}
	repo := repository.NewHybridProgressRepository(down, nil, repository.NewMemoryProgressRepository())

	calls := 0
	progress, err := repo.Update(ctx, "0xabcd", testutil.Experience1ID,
		func(progress *entity.UserProgress) (bool, error) {
			calls++
			progress.Started = true
			return true, nil
		})
	require.NoError(t, err)
	require.True(t, progress.Started)
	require.Equal(t, 1, calls)

	// Reads fall through to the backend holding the record.
	progress, err = repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	require.True(t, progress.Started)
}

func Test_hybridProgressRepository_allBackendsDown(t *testing.T) {
	ctx := testutil.MockContext()
	down := failingProgressRepository{err: errors.New("connection refused")}
	repo := repository.NewHybridProgressRepository(down, down, nil)

	_, err := repo.Get(ctx, "0xabcd", testutil.Experience1ID)
	require.ErrorIs(t, err, down.err)
}

func Test_hybridProgressRepository_businessErrorNotRetried(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewHybridProgressRepository(
		repository.NewMemoryProgressRepository(), nil, repository.NewMemoryProgressRepository())

	calls := 0
	rejection := errors.New("already claimed")
	_, err := repo.Update(ctx, "0xabcd", testutil.Experience1ID,
		func(progress *entity.UserProgress) (bool, error) {
			calls++
			return false, repository.RejectUpdate(rejection)
		})
	require.ErrorIs(t, err, rejection)

	// A rejection by the update function is final; no other backend is asked.
	require.Equal(t, 1, calls)
}
