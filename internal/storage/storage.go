// Package storage encapsula o object store S3-compatible onde as fotos de
// perfil sao replicadas. A copia local no banco e a autoritativa; o envio
// remoto e eventualmente consistente e nunca desfaz a escrita local.
package storage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PublicTags marca os objetos enviados como publicos no object store.
var PublicTags = map[string]string{"environment": "public"}

// ObjectStore e o contrato minimo consumido pelos workflows de upload.
// Nenhum caminho de leitura e necessario.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string, tags map[string]string) (etag string, err error)
}

type MinioStore struct {
	client *minio.Client
	bucket string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, body []byte, contentType string, tags map[string]string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
		UserTags:    tags,
	})
	if err != nil {
		return "", err
	}
	return info.ETag, nil
}
