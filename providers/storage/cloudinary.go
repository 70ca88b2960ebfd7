package storage

import (
	"context"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Client proxies photo bytes to the object-storage provider. The backend
// keeps only the returned URL and public id; the bytes never land on disk.
type Client interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

type cloudinaryClient struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds a client from CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY
// and CLOUDINARY_API_SECRET.
func NewCloudinary() (Client, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &cloudinaryClient{cld: cld}, nil
}

func (c *cloudinaryClient) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, err
	}
	return &UploadResult{SecureURL: result.SecureURL, PublicID: result.PublicID}, nil
}

func (c *cloudinaryClient) Destroy(ctx context.Context, publicID string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
