package testutil

import (
	"context"

	"github.com/fanpassport/backend/pkg/storage"
)

type MockStorage struct {
	UploadFunc func(ctx context.Context, object *storage.UploadObject) (*storage.UploadResponse, error)
}

func (m *MockStorage) Upload(
	ctx context.Context, object *storage.UploadObject,
) (*storage.UploadResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, object)
	}

	return &storage.UploadResponse{
		Url:      "https://storage.example.com/" + object.FileName,
		FileName: object.FileName,
	}, nil
}
