package filestorage

import (
	"bytes"
	"context"
	"io"
	"worktrack-backend/config"

	"github.com/minio/minio-go/v7"
)

type Provider interface {
	UploadFile(ctx context.Context, objectKey string, file []byte) error
	GetFile(ctx context.Context, objectKey string) ([]byte, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadFile(ctx context.Context, objectKey string, file []byte) error {
	reader := bytes.NewReader(file)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, reader, int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}
