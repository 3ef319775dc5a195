package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "worktrack-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.JobHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.JobAttachment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobAttachment")
	}
	if err := DB.AutoMigrate(&dbmodels.Approval{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Approval")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.UserNotificationSettings{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserNotificationSettings")
	}
	if err := DB.AutoMigrate(&dbmodels.LoginHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LoginHistory")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
