package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/triptales/triptales-api/pkg/helpers"
)

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

var errStorageUnavailable = errors.New("object storage is not configured")

// uploader validates and stores multipart image files in GCS. Validation of
// the whole batch happens before the first byte is written, so a rejected
// request leaves no orphan objects behind.
type uploader struct {
	Client   *storage.Client
	Bucket   string
	MaxBytes int64
}

// validate checks extension and size for every file in the batch.
func (u *uploader) validate(files ...*multipart.FileHeader) error {
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		if _, ok := allowedImageExts[ext]; !ok {
			return fmt.Errorf("file %q: only .jpg, .jpeg, and .png files are allowed", f.Filename)
		}
		if f.Size > u.MaxBytes {
			return fmt.Errorf("file %q exceeds the %d MB size limit", f.Filename, u.MaxBytes/(1024*1024))
		}
	}
	return nil
}

// upload stores one file under a fresh uuid object name and returns its URL.
func (u *uploader) upload(ctx context.Context, prefix string, f *multipart.FileHeader) (string, error) {
	if u.Client == nil || u.Bucket == "" {
		return "", errStorageUnavailable
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	contentType := allowedImageExts[ext]

	src, err := f.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	object := prefix + "/" + uuid.New().String() + ext
	return helpers.UploadObject(ctx, u.Client, u.Bucket, object, contentType, src)
}

func (u *uploader) uploadAll(ctx context.Context, prefix string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := u.upload(ctx, prefix, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
