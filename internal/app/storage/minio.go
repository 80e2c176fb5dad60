package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

type MinIOClient struct {
	client     *minio.Client
	bucketName string
	now        func() time.Time
}

// NewMinIOClient создает клиент для MinIO и бакет, если его ещё нет
func NewMinIOClient(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
		now:        time.Now,
	}, nil
}

func (m *MinIOClient) BucketName() string {
	return m.bucketName
}

// ObjectKey генерирует уникальное латинское имя объекта с исходным расширением
func ObjectKey(originalFilename string, id uuid.UUID, at time.Time) string {
	return fmt.Sprintf("service_%s_%d%s", id.String()[:8], at.Unix(), strings.ToLower(filepath.Ext(originalFilename)))
}

// ContentType по расширению файла
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// UploadFile загружает файл в MinIO и возвращает ключ объекта
func (m *MinIOClient) UploadFile(ctx context.Context, fileData []byte, originalFilename string) (string, error) {
	key := ObjectKey(originalFilename, uuid.New(), m.now())

	reader := bytes.NewReader(fileData)
	_, err := m.client.PutObject(ctx, m.bucketName, key, reader, int64(len(fileData)), minio.PutObjectOptions{
		ContentType: ContentType(originalFilename),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", key)
	return key, nil
}

// DeleteFile удаляет файл из MinIO
func (m *MinIOClient) DeleteFile(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logrus.Infof("File %s deleted successfully", key)
	return nil
}

// GetFileURL возвращает временную ссылку на файл
func (m *MinIOClient) GetFileURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucketName, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
