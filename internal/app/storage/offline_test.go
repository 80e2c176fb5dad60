package storage

import (
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// newOffline собирает клиент без проверки бакета
func newOffline(endpoint, bucket string) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secretsecret", ""),
		Region: "us-east-1",
	})
	if err != nil {
		return nil, err
	}
	return &MinIOClient{client: client, bucketName: bucket, now: time.Now}, nil
}
