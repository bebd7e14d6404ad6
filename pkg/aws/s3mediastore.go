package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

// S3MediaStore implements the mediastore.MediaStore interface on S3.
type S3MediaStore struct {
	bucket   string
	s3Client *s3.Client
}

var _ mediastore.MediaStore = (*S3MediaStore)(nil)

func NewS3MediaStore(cfg aws.Config, bucket string, opts ...func(*s3.Options)) *S3MediaStore {
	return &S3MediaStore{
		s3Client: s3.NewFromConfig(cfg, opts...),
		bucket:   bucket,
	}
}

// Put implements mediastore.MediaStore.
func (s *S3MediaStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.s3Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("storing object: %w", err)
	}
	return nil
}

// URL implements mediastore.MediaStore.
func (s *S3MediaStore) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
