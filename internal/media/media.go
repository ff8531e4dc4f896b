package media

import (
	"context"
	"io"
)

// UploadResult is what the media host hands back for a stored image.
type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader stores an image under a logical folder and returns its public URL
// plus the provider's handle for it. The handle is persisted on the record so
// the image can be managed later.
type Uploader interface {
	Upload(ctx context.Context, image io.Reader, folder string) (*UploadResult, error)
}
