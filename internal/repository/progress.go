package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/keylock"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressRepository is the durable mapping from (user, experience) to the
// user's progress record. The engine never knows which backend is active.
//
// Get returns (nil, nil) when no record exists: absence of progress is a
// valid state, not a failure. Any non-nil error means the backend itself
// failed and the effect of the call is unknown.
type ProgressRepository interface {
	Get(ctx context.Context, userAddress string, experienceID int64) (*entity.UserProgress, error)

	// Put replaces the whole record.
	Put(ctx context.Context, progress *entity.UserProgress) error

	// Update runs fn on the current record (a zero-value one when none
	// exists) and writes the record back when fn reports a change. Calls for
	// the same (user, experience) key are serialized by the store; calls for
	// different keys proceed independently.
	Update(
		ctx context.Context,
		userAddress string,
		experienceID int64,
		fn func(progress *entity.UserProgress) (changed bool, err error),
	) (*entity.UserProgress, error)
}

// ProgressStatisticRepository exposes the bulk reads the leaderboard rebuild
// needs. Only the authoritative database implements it; the leaderboard never
// rebuilds from a degraded backend.
type ProgressStatisticRepository interface {
	GetListByExperiences(ctx context.Context, experienceIDs []int64) ([]entity.UserProgress, error)
}

// DatabaseProgressRepository is the authoritative backend. Besides the plain
// store contract it supports the statistic reads.
type DatabaseProgressRepository interface {
	ProgressRepository
	ProgressStatisticRepository
}

// NormalizeAddress lowercases a user address so checksummed and lowercase
// forms of the same wallet address hit the same store key.
func NormalizeAddress(userAddress string) string {
	return strings.ToLower(userAddress)
}

func progressKey(userAddress string, experienceID int64) string {
	return fmt.Sprintf("%s|%d", NormalizeAddress(userAddress), experienceID)
}

func emptyProgress(userAddress string, experienceID int64) *entity.UserProgress {
	return &entity.UserProgress{
		UserAddress:    NormalizeAddress(userAddress),
		ExperienceID:   experienceID,
		CompletedTasks: entity.Array[int]{},
		Rewards:        entity.RewardMap{},
	}
}

// storeContext bounds a store call with the configured timeout. A timed out
// call is reported as a normal store error, which the hybrid repository
// treats as a backend-unavailable condition.
func storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(xcontext.Configs(ctx).Progress.StoreTimeout)
	if timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

type progressRepository struct {
	db    *gorm.DB
	locks *keylock.KeyLock
}

// NewProgressRepository returns the authoritative backend, shared by all
// users and experiences, on top of a gorm database.
func NewProgressRepository(db *gorm.DB) DatabaseProgressRepository {
	return &progressRepository{db: db, locks: keylock.New()}
}

func (r *progressRepository) Get(
	ctx context.Context, userAddress string, experienceID int64,
) (*entity.UserProgress, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	result := &entity.UserProgress{}
	err := r.db.WithContext(ctx).
		Take(result, "user_address=? AND experience_id=?",
			NormalizeAddress(userAddress), experienceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return result, nil
}

func (r *progressRepository) Put(ctx context.Context, progress *entity.UserProgress) error {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	progress.UserAddress = NormalizeAddress(progress.UserAddress)
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}

	return r.db.WithContext(ctx).Save(progress).Error
}

func (r *progressRepository) GetListByExperiences(
	ctx context.Context, experienceIDs []int64,
) ([]entity.UserProgress, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	result := []entity.UserProgress{}
	err := r.db.WithContext(ctx).
		Find(&result, "experience_id IN (?)", experienceIDs).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *progressRepository) Update(
	ctx context.Context,
	userAddress string,
	experienceID int64,
	fn func(progress *entity.UserProgress) (bool, error),
) (*entity.UserProgress, error) {
	defer r.locks.Lock(progressKey(userAddress, experienceID))()

	progress, err := r.Get(ctx, userAddress, experienceID)
	if err != nil {
		return nil, err
	}

	if progress == nil {
		progress = emptyProgress(userAddress, experienceID)
	}

	changed, err := fn(progress)
	if err != nil {
		return nil, err
	}

	if changed {
		if err := r.Put(ctx, progress); err != nil {
			return nil, err
		}
	}

	return progress, nil
}
