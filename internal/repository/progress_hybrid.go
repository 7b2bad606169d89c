package repository

import (
	"context"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/xcontext"
)

type progressBackend struct {
	name string
	repo ProgressRepository
}

// hybridProgressRepository routes every call to the preferred backend and
// transparently retries against the next one when the preferred backend
// fails. The selection is re-evaluated on each call, so a backend that
// recovers is picked up again without restarting anything. Only when every
// backend fails does the error reach the caller.
type hybridProgressRepository struct {
	backends []progressBackend
}

// NewHybridProgressRepository builds the façade. Any of the arguments may be
// nil; at least one backend must be given. Order: authoritative database,
// local device cache, in-process memory.
func NewHybridProgressRepository(primary, local, fallback ProgressRepository) ProgressRepository {
	backends := []progressBackend{}
	if primary != nil {
		backends = append(backends, progressBackend{name: "primary", repo: primary})
	}

	if local != nil {
		backends = append(backends, progressBackend{name: "local", repo: local})
	}

	if fallback != nil {
		backends = append(backends, progressBackend{name: "memory", repo: fallback})
	}

	return &hybridProgressRepository{backends: backends}
}

func (r *hybridProgressRepository) Get(
	ctx context.Context, userAddress string, experienceID int64,
) (*entity.UserProgress, error) {
	var lastErr error
	for _, backend := range r.backends {
		progress, err := backend.repo.Get(ctx, userAddress, experienceID)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Progress backend %s failed on get: %v", backend.name, err)
			lastErr = err
			continue
		}

		return progress, nil
	}

	return nil, lastErr
}

func (r *hybridProgressRepository) Put(ctx context.Context, progress *entity.UserProgress) error {
	var lastErr error
	for _, backend := range r.backends {
		if err := backend.repo.Put(ctx, progress); err != nil {
			xcontext.Logger(ctx).Warnf("Progress backend %s failed on put: %v", backend.name, err)
			lastErr = err
			continue
		}

		return nil
	}

	return lastErr
}

func (r *hybridProgressRepository) Update(
	ctx context.Context,
	userAddress string,
	experienceID int64,
	fn func(progress *entity.UserProgress) (bool, error),
) (*entity.UserProgress, error) {
	var lastErr error
	for _, backend := range r.backends {
		progress, err := backend.repo.Update(ctx, userAddress, experienceID, fn)
		if err != nil {
			if isBusinessError(err) {
				// fn rejected the update; switching backends cannot change
				// that answer.
				return nil, err
			}

			xcontext.Logger(ctx).Warnf("Progress backend %s failed on update: %v", backend.name, err)
			lastErr = err
			continue
		}

		return progress, nil
	}

	return nil, lastErr
}

// isBusinessError reports whether the error came from the update function
// itself rather than from backend I/O.
func isBusinessError(err error) bool {
	_, ok := err.(updateRejectedError)
	return ok
}

// updateRejectedError wraps an error returned by an Update callback so the
// hybrid repository does not mistake it for a backend failure.
type updateRejectedError struct {
	err error
}

func (e updateRejectedError) Error() string {
	return e.err.Error()
}

func (e updateRejectedError) Unwrap() error {
	return e.err
}

// RejectUpdate marks an error returned from an Update callback as a business
// decision instead of a storage failure.
func RejectUpdate(err error) error {
	return updateRejectedError{err: err}
}
