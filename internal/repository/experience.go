package repository

import (
	"context"

	"github.com/fanpassport/backend/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExperienceRepository is the catalog provider. The catalog is written only by
// the seed command (or when the local cache copies it); the engine never
// mutates it.
type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	GetList(ctx context.Context) ([]entity.Experience, error)
	GetListByClub(ctx context.Context, clubID string) ([]entity.Experience, error)
	GetByID(ctx context.Context, id int64) (*entity.Experience, error)

	// Replace overwrites the whole catalog. It is used to seed the local
	// device cache with a copy of the authoritative catalog.
	Replace(ctx context.Context, experiences []entity.Experience) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(experience).Error
}

func (r *experienceRepository) GetList(ctx context.Context) ([]entity.Experience, error) {
	result := []entity.Experience{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *experienceRepository) GetListByClub(
	ctx context.Context, clubID string,
) ([]entity.Experience, error) {
	result := []entity.Experience{}
	if err := r.db.WithContext(ctx).
		Where("club_id=?", clubID).
		Order("id ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id int64) (*entity.Experience, error) {
	result := &entity.Experience{}
	if err := r.db.WithContext(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *experienceRepository) Replace(
	ctx context.Context, experiences []entity.Experience,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Experience{}).Error; err != nil {
			return err
		}

		for i := range experiences {
			if err := tx.Create(&experiences[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
