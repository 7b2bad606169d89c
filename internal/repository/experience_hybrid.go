package repository

import (
	"context"
	"errors"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// hybridExperienceRepository serves catalog reads from the authoritative
// database and falls back to the local device cache when it is unreachable.
// Every successful read of the full catalog refreshes the cache seed, so the
// fallback stays useful.
type hybridExperienceRepository struct {
	primary ExperienceRepository
	local   *LocalStore
}

func NewHybridExperienceRepository(
	primary ExperienceRepository, local *LocalStore,
) ExperienceRepository {
	return &hybridExperienceRepository{primary: primary, local: local}
}

func (r *hybridExperienceRepository) Create(
	ctx context.Context, experience *entity.Experience,
) error {
	// The catalog is only written through the authoritative backend.
	return r.primary.Create(ctx, experience)
}

func (r *hybridExperienceRepository) Replace(
	ctx context.Context, experiences []entity.Experience,
) error {
	return r.primary.Replace(ctx, experiences)
}

func (r *hybridExperienceRepository) GetList(ctx context.Context) ([]entity.Experience, error) {
	experiences, err := r.primary.GetList(ctx)
	if err == nil {
		r.seed(ctx, experiences)
		return experiences, nil
	}

	if r.local == nil {
		return nil, err
	}

	xcontext.Logger(ctx).Warnf("Catalog unavailable, serving the local copy: %v", err)
	return r.local.Experiences().GetList(ctx)
}

func (r *hybridExperienceRepository) GetListByClub(
	ctx context.Context, clubID string,
) ([]entity.Experience, error) {
	experiences, err := r.primary.GetListByClub(ctx, clubID)
	if err == nil {
		return experiences, nil
	}

	if r.local == nil {
		return nil, err
	}

	xcontext.Logger(ctx).Warnf("Catalog unavailable, serving the local copy: %v", err)
	return r.local.Experiences().GetListByClub(ctx, clubID)
}

func (r *hybridExperienceRepository) GetByID(
	ctx context.Context, id int64,
) (*entity.Experience, error) {
	experience, err := r.primary.GetByID(ctx, id)
	if err == nil {
		return experience, nil
	}

	// A definitive not-found answer from the authoritative catalog is final.
	// Only a failure to reach it justifies serving the local copy.
	if errors.Is(err, gorm.ErrRecordNotFound) || r.local == nil {
		return nil, err
	}

	xcontext.Logger(ctx).Warnf("Catalog unavailable, serving the local copy: %v", err)
	return r.local.Experiences().GetByID(ctx, id)
}

func (r *hybridExperienceRepository) seed(ctx context.Context, experiences []entity.Experience) {
	if r.local == nil || len(experiences) == 0 {
		return
	}

	if err := r.local.SeedCatalog(ctx, experiences); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot seed the local catalog copy: %v", err)
	}
}
