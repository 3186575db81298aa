package source

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinIO implements Opener for MinIO and S3-compatible storage.
type MinIO struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIO creates a MinIO source. rootPrefix is prepended to all keys.
func NewMinIO(client *minio.Client, bucket, rootPrefix string) *MinIO {
	return &MinIO{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (m *MinIO) key(name string) string {
	return path.Join(m.prefix, name)
}

// Open opens the named object for reading.
func (m *MinIO) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := m.key(name)

	// Stat first: GetObject defers existence errors to the first Read.
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}
