package domain

import (
	"context"

	"github.com/fanpassport/backend/internal/common"
	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/pkg/storage"
)

type FileDomain interface {
	UploadPhoto(context.Context, *model.UploadPhotoRequest) (*model.UploadPhotoResponse, error)
}

type fileDomain struct {
	storage storage.Storage
}

func NewFileDomain(storage storage.Storage) FileDomain {
	return &fileDomain{storage: storage}
}

// UploadPhoto stores a photo submission so a photo task can reference it. The
// image itself comes from the multipart form, not from the request body.
func (d *fileDomain) UploadPhoto(
	ctx context.Context, req *model.UploadPhotoRequest,
) (*model.UploadPhotoResponse, error) {
	resp, err := common.ProcessImage(ctx, d.storage, "image", "photos")
	if err != nil {
		return nil, err
	}

	return &model.UploadPhotoResponse{Url: resp.Url}, nil
}
