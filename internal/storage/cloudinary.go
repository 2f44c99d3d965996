package storage

import (
	"context"
	"fmt"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads images to Cloudinary. The public id is the handle
// used to delete them later.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, folder string, file domain.Upload) (*domain.StoredImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", file.Filename, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("upload %s: %s", file.Filename, resp.Error.Message)
	}

	return &domain.StoredImage{URL: resp.SecureURL, Handle: resp.PublicID}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, handle string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: handle})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", handle, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", handle, resp.Error.Message)
	}
	return nil
}

// Disabled is used when no Cloudinary credentials are configured. Uploads
// fail with a validation error and deletes are no-ops.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, domain.Upload) (*domain.StoredImage, error) {
	return nil, domain.ErrStorageDisabled
}

func (Disabled) Delete(context.Context, string) error {
	return nil
}

