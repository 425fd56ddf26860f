package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const imageFileField = "image_file"

// imageUploader stores an image and returns its public URL.
type imageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    folder,
		PublicID:  uuid.NewString(),
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}

	return resp.SecureURL, nil
}

// attachUploadedImage replaces *link with the URL of the uploaded image_file
// part, if the request carries one and an uploader is configured. Without
// either the submitted image_link is kept.
func (app *application) attachUploadedImage(r *http.Request, folder string, link *string) error {
	if app.images == nil || r.MultipartForm == nil {
		return nil
	}

	file, header, err := r.FormFile(imageFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil
		}
		return fmt.Errorf("read %s: %w", imageFileField, err)
	}
	defer file.Close()

	if header.Size == 0 {
		return nil
	}

	url, err := app.images.Upload(r.Context(), file, folder)
	if err != nil {
		return err
	}
	*link = url
	return nil
}
