package initializers

import (
	"context"
	filestorage "worktrack-backend/lib/file-storage"
	s3client "worktrack-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	if err = client.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
	}
	filestorage.NewInstance(s3client.Client)
	log.Info("S3 клиент успешно инициализирован")
}
