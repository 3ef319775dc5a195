package notificationsettingsstore

import (
	dbmodels "worktrack-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByUser(userID string) (rec *dbmodels.UserNotificationSettings, err error)
	Create(rec dbmodels.UserNotificationSettings) error
	Update(userID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUser(userID string) (rec *dbmodels.UserNotificationSettings, err error) {
	err = i.db.Model(dbmodels.UserNotificationSettings{}).
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Create(rec dbmodels.UserNotificationSettings) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.Model(&dbmodels.UserNotificationSettings{}).
		Where("user_id = ?", userID).
		Updates(updMap).
		Error
}
