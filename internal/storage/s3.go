package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/DjapsSparrow/Kine-siologie/internal/config"
)

// FileStore uploads practice documents to an S3 bucket and hands back
// public URLs.
type FileStore struct {
	client   *s3.Client
	bucket   string
	endpoint string
	region   string
}

func NewFileStore(cfg *config.Config) *FileStore {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &FileStore{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: cfg.S3Endpoint,
		region:   cfg.S3Region,
	}
}

// Upload stores the payload under a generated key inside folder and
// returns the object's public URL. Image payloads are resized and
// re-encoded to webp first.
func (fs *FileStore) Upload(
	ctx context.Context,
	folder string,
	filename string,
	contentType string,
	data []byte,
) (string, error) {

	if converted, ok := ConvertImage(data, contentType); ok {
		data = converted
		contentType = "image/webp"
		filename = strings.TrimSuffix(filename, path.Ext(filename)) + ".webp"
	}

	key := fmt.Sprintf(
		"%s/%d-%s%s",
		folder,
		time.Now().Unix(),
		uuid.NewString()[:8],
		path.Ext(filename),
	)

	_, err := fs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(fs.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fs.PublicURL(key), nil
}

func (fs *FileStore) PublicURL(key string) string {
	if fs.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(fs.endpoint, "/"), fs.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", fs.bucket, fs.region, key)
}
