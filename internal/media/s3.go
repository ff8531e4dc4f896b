package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"

	s3 "enrollify/aws"
)

// S3Uploader is the alternative media backend. The object key doubles as the
// provider identifier.
type S3Uploader struct {
	bucket string
	region string
	sess   *session.Session
}

func NewS3Uploader(cfg s3.AWSConfig, bucket string) *S3Uploader {
	return &S3Uploader{
		bucket: bucket,
		region: cfg.Region,
		sess:   s3.CreateSession(cfg),
	}
}

func (u *S3Uploader) Upload(ctx context.Context, image io.Reader, folder string) (*UploadResult, error) {
	key := fmt.Sprintf("%s/%d", folder, time.Now().UnixNano())
	if err := s3.UploadObject(u.bucket, key, u.sess, image, "image/png"); err != nil {
		return nil, err
	}
	return &UploadResult{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key),
		PublicID: key,
	}, nil
}
