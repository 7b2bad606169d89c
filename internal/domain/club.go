package domain

import (
	"context"
	"errors"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ClubDomain interface {
	GetClubs(context.Context, *model.GetClubsRequest) (*model.GetClubsResponse, error)
	GetClub(context.Context, *model.GetClubRequest) (*model.GetClubResponse, error)
	GetCurrentClub(context.Context, *model.GetCurrentClubRequest) (*model.GetCurrentClubResponse, error)
	SetCurrentClub(context.Context, *model.SetCurrentClubRequest) (*model.SetCurrentClubResponse, error)
}

type clubDomain struct {
	clubRepo    repository.ClubRepository
	settingRepo repository.SettingRepository
}

func NewClubDomain(
	clubRepo repository.ClubRepository,
	settingRepo repository.SettingRepository,
) ClubDomain {
	return &clubDomain{clubRepo: clubRepo, settingRepo: settingRepo}
}

func (d *clubDomain) GetClubs(
	ctx context.Context, req *model.GetClubsRequest,
) (*model.GetClubsResponse, error) {
	clubs, err := d.clubRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get clubs: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Club{}
	for i := range clubs {
		result = append(result, model.ConvertClub(&clubs[i]))
	}

	return &model.GetClubsResponse{Clubs: result}, nil
}

func (d *clubDomain) GetClub(
	ctx context.Context, req *model.GetClubRequest,
) (*model.GetClubResponse, error) {
	club, err := d.clubRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found club")
		}

		xcontext.Logger(ctx).Errorf("Cannot get club: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetClubResponse(model.ConvertClub(club))
	return &resp, nil
}

func (d *clubDomain) GetCurrentClub(
	ctx context.Context, req *model.GetCurrentClubRequest,
) (*model.GetCurrentClubResponse, error) {
	clubID, err := d.settingRepo.Get(ctx, entity.SettingCurrentClub)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current club setting: %v", err)
		return nil, errorx.Unknown
	}

	// Before any selection is stored, the first club of the catalog is the
	// current one.
	if clubID == "" {
		clubs, err := d.clubRepo.GetList(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get clubs: %v", err)
			return nil, errorx.Unknown
		}

		if len(clubs) == 0 {
			return nil, errorx.New(errorx.NotFound, "Not found any club")
		}

		clubID = clubs[0].ID
	}

	return &model.GetCurrentClubResponse{ClubID: clubID}, nil
}

func (d *clubDomain) SetCurrentClub(
	ctx context.Context, req *model.SetCurrentClubRequest,
) (*model.SetCurrentClubResponse, error) {
	if _, err := d.clubRepo.GetByID(ctx, req.ClubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found club")
		}

		xcontext.Logger(ctx).Errorf("Cannot get club: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.settingRepo.Set(ctx, entity.SettingCurrentClub, req.ClubID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set current club setting: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetCurrentClubResponse{}, nil
}
