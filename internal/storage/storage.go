// Package storage abstracts the object store that hosts uploaded
// images. The rest of the application only sees public URLs and the
// public IDs needed to delete objects later.
package storage

import (
	"context"
	"io"

	"restaurant-hub/internal/model"
)

// Uploader stores image files and deletes them by public ID.
type Uploader interface {
	// Upload stores the file under the given folder and returns the
	// public URL and the public ID to delete it with.
	Upload(ctx context.Context, body io.Reader, filename, folder string) (*model.UploadResult, error)

	// Delete removes a previously uploaded object. Returns false when
	// the object could not be removed; callers treat that as
	// non-fatal and log it.
	Delete(ctx context.Context, publicID string) bool
}

// disabledUploader rejects every upload. Used when object storage is
// not configured so the rest of the app can still run.
type disabledUploader struct{}

// NewDisabledUploader returns an Uploader that fails every upload with
// a storage error.
func NewDisabledUploader() Uploader {
	return disabledUploader{}
}

func (disabledUploader) Upload(_ context.Context, _ io.Reader, _, _ string) (*model.UploadResult, error) {
	return nil, model.NewDomainError(model.ErrCodeStorage, "image storage is not configured")
}

func (disabledUploader) Delete(_ context.Context, _ string) bool {
	return false
}
