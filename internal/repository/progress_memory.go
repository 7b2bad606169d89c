package repository

import (
	"context"
	"sync"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/keylock"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
)

// memoryProgressRepository is the in-process last resort when no durable
// backend is reachable. Records are lost on restart; the first write logs a
// warning so the non-durable path is visible in telemetry.
type memoryProgressRepository struct {
	records  *xsync.MapOf[string, *entity.UserProgress]
	locks    *keylock.KeyLock
	warnOnce sync.Once
}

func NewMemoryProgressRepository() ProgressRepository {
	return &memoryProgressRepository{
		records: xsync.NewMapOf[*entity.UserProgress](),
		locks:   keylock.New(),
	}
}

func (r *memoryProgressRepository) Get(
	ctx context.Context, userAddress string, experienceID int64,
) (*entity.UserProgress, error) {
	progress, ok := r.records.Load(progressKey(userAddress, experienceID))
	if !ok {
		return nil, nil
	}

	return progress.Clone(), nil
}

func (r *memoryProgressRepository) Put(ctx context.Context, progress *entity.UserProgress) error {
	r.warnOnce.Do(func() {
		xcontext.Logger(ctx).Warnf(
			"Progress is being written to the non-durable memory store; records are lost on restart")
	})

	progress.UserAddress = NormalizeAddress(progress.UserAddress)
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}

	r.records.Store(progressKey(progress.UserAddress, progress.ExperienceID), progress.Clone())
	return nil
}

func (r *memoryProgressRepository) Update(
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
