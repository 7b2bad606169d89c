package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type failingExperienceRepository struct {
	err error
}

func (r failingExperienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	return r.err
}

func (r failingExperienceRepository) GetList(ctx context.Context) ([]entity.Experience, error) {
	return nil, r.err
}

func (r failingExperienceRepository) GetListByClub(
	ctx context.Context, clubID string,
) ([]entity.Experience, error) {
	return nil, r.err
}

func (r failingExperienceRepository) GetByID(ctx context.Context, id int64) (*entity.Experience, error) {
	return nil, r.err
}

func (r failingExperienceRepository) Replace(ctx context.Context, experiences []entity.Experience) error {
	return r.err
}

func Test_hybridExperienceRepository_seedAndFallback(t *testing.T) {
	ctx := testutil.MockContext()
	local, err := repository.OpenLocalStore(":memory:")
	require.NoError(t, err)

	primary := repository.NewExperienceRepository(testutil.CreateFixtureDb())
	hybrid := repository.NewHybridExperienceRepository(primary, local)

	// A successful catalog read seeds the local copy.
	experiences, err := hybrid.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 3)

	cached, err := local.Experiences().GetList(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 3)

	// With the primary down, reads are served from the local copy.
	down := repository.NewHybridExperienceRepository(
		failingExperienceRepository{err: errors.New("connection refused")}, local)

	experience, err := down.GetByID(ctx, testutil.Experience1ID)
	require.NoError(t, err)
	require.Equal(t, "Matchday Warmup", experience.Name)
	require.Len(t, experience.Tasks, 2)
	require.Equal(t, "1970", experience.Tasks[0].Answer)

	byClub, err := down.GetListByClub(ctx, testutil.Club1ID)
	require.NoError(t, err)
	require.Len(t, byClub, 2)
}

func Test_hybridExperienceRepository_notFoundIsFinal(t *testing.T) {
	ctx := testutil.MockContext()
	local, err := repository.OpenLocalStore(":memory:")
	require.NoError(t, err)

	// The local copy still holds a record the authoritative catalog no longer
	// has. The definitive not-found answer must not resurrect it.
	err = local.SeedCatalog(ctx, []entity.Experience{{ID: 404, Name: "Removed"}})
	require.NoError(t, err)

	hybrid := repository.NewHybridExperienceRepository(
		failingExperienceRepository{err: gorm.ErrRecordNotFound}, local)

	_, err = hybrid.GetByID(ctx, 404)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_localStore_seedOnlyOnce(t *testing.T) {
	ctx := testutil.MockContext()
	local, err := repository.OpenLocalStore(":memory:")
	require.NoError(t, err)

	err = local.SeedCatalog(ctx, []entity.Experience{{ID: 1, Name: "First"}})
	require.NoError(t, err)

	// An already seeded cache keeps its copy.
	err = local.SeedCatalog(ctx, []entity.Experience{{ID: 2, Name: "Second"}})
	require.NoError(t, err)

	experiences, err := local.Experiences().GetList(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 1)
	require.Equal(t, "First", experiences[0].Name)
}
