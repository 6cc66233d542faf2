package objectstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/codementor/codementor-api/pkg/retry"
	"go.uber.org/zap"
)

// StorageClient is an S3-compatible object storage client used for avatar images
type StorageClient struct {
	s3Client   *s3.Client
	bucketName string
	endpoint   string
}

// NewStorageClient creates a new object storage client using the S3 SDK
func NewStorageClient(accessKeyID, secretAccessKey, bucketName, endpoint, region string) (*StorageClient, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("object storage endpoint is required")
	}
	if region == "" {
		region = "us-east-1"
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("Object storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &StorageClient{
		s3Client:   s3Client,
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// UploadImage uploads a base64-encoded image and returns its public URL.
// Accepts either a raw base64 string or a data URI (data:image/png;base64,...).
func (s *StorageClient) UploadImage(ctx context.Context, imageData, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadImage"

	var imageBytes []byte
	var err error

	if strings.HasPrefix(imageData, "data:") {
		parts := strings.SplitN(imageData, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid data URI format")
		}
		imageBytes, err = base64.StdEncoding.DecodeString(parts[1])
	} else {
		imageBytes, err = base64.StdEncoding.DecodeString(imageData)
	}

	if err != nil {
		metrics.ObjectStorageRequestDuration.WithLabelValues(operation, "error").Observe(metrics.MeasureDuration(start))
		metrics.ObjectStorageRequestTotal.WithLabelValues(operation, "error").Inc()
		return "", fmt.Errorf("failed to decode base64 image: %w", err)
	}

	_, err = retry.Do(ctx, retry.ObjectStorageConfig(), operation, func() (*s3.PutObjectOutput, error) {
		return s.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(imageBytes),
			ContentType: aws.String(contentType),
		})
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.ObjectStorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.ObjectStorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	metrics.ObjectStorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.ObjectStorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(imageBytes)),
	)

	// Public URL format: {endpoint}/{bucket}/{key}
	imageURL := fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, key)

	return imageURL, nil
}

// DeleteImage removes an object from the bucket. Missing keys are not an error.
func (s *StorageClient) DeleteImage(ctx context.Context, key string) error {
	start := time.Now()
	operation := "deleteImage"

	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.ObjectStorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.ObjectStorageRequestTotal.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("failed to delete image: %w", err)
	}

	metrics.ObjectStorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.ObjectStorageRequestTotal.WithLabelValues(operation, "success").Inc()

	return nil
}
