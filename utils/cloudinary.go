package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/agropetvet/vetcare-app/config"
)

// ImageStore wraps the Cloudinary client. Images are uploaded here first and
// only the returned URLs are persisted.
type ImageStore struct {
	cld    *cloudinary.Cloudinary
	preset string
}

func NewImageStore(cfg *config.Config) (*ImageStore, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}
	return &ImageStore{cld: cld, preset: cfg.CloudinaryUploadPreset}, nil
}

// Upload pushes a file to Cloudinary and returns the secure URL.
func (s *ImageStore) Upload(ctx context.Context, file interface{}, folder string) (string, error) {
	publicID := fmt.Sprintf("%s_%d", folder, time.Now().UnixNano())
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		UploadPreset: s.preset,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
