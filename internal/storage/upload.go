// internal/storage/upload.go
// Upload service for ID verification photos. S3 in production, a local
// directory in development.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadService stores verification photos and returns their URL.
type UploadService interface {
	UploadVerificationPhoto(ctx context.Context, userID, contentType string, data io.Reader) (string, error)
}

// S3UploadService implements UploadService backed by S3
type S3UploadService struct {
	client *s3.S3
	bucket string
}

// NewS3UploadService creates an S3-backed upload service
func NewS3UploadService(bucket, region string) (*S3UploadService, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3UploadService{
		client: s3.New(sess),
		bucket: bucket,
	}, nil
}

func (s *S3UploadService) UploadVerificationPhoto(ctx context.Context, userID, contentType string, data io.Reader) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}

	body, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	key := fmt.Sprintf("verification/%s/%s%s", userID, uuid.New().String(), ext)

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// LocalUploadService implements UploadService on the local filesystem
type LocalUploadService struct {
	dir     string
	baseURL string
}

// NewLocalUploadService creates a filesystem-backed upload service
func NewLocalUploadService(dir, baseURL string) *LocalUploadService {
	return &LocalUploadService{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalUploadService) UploadVerificationPhoto(ctx context.Context, userID, contentType string, data io.Reader) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}

	dir := filepath.Join(s.dir, "verification", userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/verification/%s/%s", s.baseURL, userID, name), nil
}
