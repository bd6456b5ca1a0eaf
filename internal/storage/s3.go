package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"ordering-backend/internal/domain"
)

// S3ImageStore stores image blobs and serves them at BaseURL/<key>. Callers
// recover the key from a stored URL with ImageKeyFromURL.
type S3ImageStore struct {
	Client  *s3.Client
	Bucket  string
	BaseURL string
}

func NewS3ImageStore(client *s3.Client, bucket, baseURL string) *S3ImageStore {
	return &S3ImageStore{Client: client, Bucket: bucket, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *S3ImageStore) Store(ctx context.Context, data []byte, key string) (string, error) {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object %s: %v", domain.ErrStorage, key, err)
	}
	return s.BaseURL + "/" + key, nil
}

func (s *S3ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: delete object %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// ImageKeyFromURL extracts the object key: the substring after the last
// path separator. Stored URLs always end in the key.
func ImageKeyFromURL(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
