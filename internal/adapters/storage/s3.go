package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3PageStore reads maintenance pages from an S3 bucket.
type S3PageStore struct {
	client *s3.Client
	bucket string
}

// NewS3PageStore creates an S3-backed page store. Region falls back to the
// SDK's default resolution chain when empty.
func NewS3PageStore(ctx context.Context, bucket, region string) (*S3PageStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3PageStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
	}, nil
}

// NewS3PageStoreWithClient creates an S3-backed page store from an existing
// client.
func NewS3PageStoreWithClient(client *s3.Client, bucket string) *S3PageStore {
	return &S3PageStore{client: client, bucket: bucket}
}

// Retrieve implements PageStore.Retrieve
func (s *S3PageStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, NewStoreError("Retrieve", key, ErrInvalidKey, false)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.wrapError("Retrieve", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, NewStoreError("Retrieve", key, fmt.Errorf("%w: %v", ErrStoreUnavailable, err), true)
	}

	return data, nil
}

// Exists implements PageStore.Exists
func (s *S3PageStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.GetMetadata(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetMetadata implements PageStore.GetMetadata
func (s *S3PageStore) GetMetadata(ctx context.Context, key string) (*PageMetadata, error) {
	if key == "" {
		return nil, NewStoreError("GetMetadata", key, ErrInvalidKey, false)
	}

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.wrapError("GetMetadata", key, err)
	}

	return &PageMetadata{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
		ETag:         aws.ToString(out.ETag),
	}, nil
}

// Close implements PageStore.Close
func (s *S3PageStore) Close() error {
	return nil
}

// wrapError maps S3 API errors onto the store error taxonomy.
func (s *S3PageStore) wrapError(op, key string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewStoreError(op, key, ErrTimeout, true)
	}

	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) || errors.As(err, &notFound) {
		return NewStoreError(op, key, ErrPageNotFound, false)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return NewStoreError(op, key, ErrPageNotFound, false)
		case "AccessDenied", "Forbidden":
			return NewStoreError(op, key, ErrPermissionDenied, false)
		}
	}

	return NewStoreError(op, key, fmt.Errorf("%w: %v", ErrStoreUnavailable, err), true)
}
