package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for blob-storage operations.
type StorageService interface {
	// UploadFile pushes a local file under publicID, replacing any existing
	// asset, and returns its public download URL.
	UploadFile(ctx context.Context, localFilePath, publicID string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
