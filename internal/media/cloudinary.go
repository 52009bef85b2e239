package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadedImage is what the admin UI stores on the product afterwards.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Alt      string `json:"alt"`
}

// Uploader pushes an image to the external media host and returns the
// hosted reference.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename string) (UploadedImage, error)
}

type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	if strings.TrimSpace(cloudinaryURL) == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is required")
	}
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: client, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader, filename string) (UploadedImage, error) {
	resp, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     uuid.NewString(),
		ResourceType: "image",
		// Storefront images never need more than 800x600.
		Transformation: "c_limit,w_800,h_600/q_auto:good",
	})
	if err != nil {
		return UploadedImage{}, err
	}
	if resp.Error.Message != "" {
		return UploadedImage{}, fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}

	return UploadedImage{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Alt:      filename,
	}, nil
}
