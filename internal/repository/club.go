package repository

import (
	"context"

	"github.com/fanpassport/backend/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClubRepository interface {
	Create(ctx context.Context, club *entity.Club) error
	GetList(ctx context.Context) ([]entity.Club, error)
	GetByID(ctx context.Context, id string) (*entity.Club, error)
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *entity.Club) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(club).Error
}

func (r *clubRepository) GetList(ctx context.Context) ([]entity.Club, error) {
	result := []entity.Club{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*entity.Club, error) {
	result := &entity.Club{}
	if err := r.db.WithContext(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}
