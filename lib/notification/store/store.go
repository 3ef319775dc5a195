package notificationstore

import (
	apimodels "worktrack-backend/models/api"
	dbmodels "worktrack-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) error
	List(userID string, pg apimodels.Pagination) (list []dbmodels.Notification, err error)
	ListCount(userID string) (int64, error)
	ListUnread(userID string) (list []dbmodels.Notification, err error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(userID string, pg apimodels.Pagination) (list []dbmodels.Notification, err error) {
	page, limit := pg.GetPage()
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(userID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	return count, err
}

func (i impl) ListUnread(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("read = false").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(userID, id string) error {
	return i.db.Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("read", true).
		Error
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("read = false").
		Update("read", true).
		Error
}
