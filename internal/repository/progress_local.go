package repository

import (
	"context"

	"github.com/fanpassport/backend/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// LocalStore is the per-device cache backend. It keeps the same record shapes
// as the authoritative database in a private sqlite file, so the progress
// engine can keep working when the shared database is unreachable from the
// running context. It is single-user by construction; per-key serialization
// still applies for concurrent calls inside the process.
type LocalStore struct {
	db          *gorm.DB
	progress    ProgressRepository
	experiences ExperienceRepository
}

func OpenLocalStore(path string) (*LocalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := entity.MigrateTable(db); err != nil {
		return nil, err
	}

	return &LocalStore{
		db:          db,
		progress:    NewProgressRepository(db),
		experiences: NewExperienceRepository(db),
	}, nil
}

func (s *LocalStore) Progress() ProgressRepository {
	return s.progress
}

func (s *LocalStore) Experiences() ExperienceRepository {
	return s.experiences
}

// SeedCatalog copies the immutable experience catalog into the cache the
// first time it is used, so catalog reads can be served without the
// authoritative backend. An already seeded cache is left untouched.
func (s *LocalStore) SeedCatalog(ctx context.Context, experiences []entity.Experience) error {
	existing, err := s.experiences.GetList(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	return s.experiences.Replace(ctx, experiences)
}
