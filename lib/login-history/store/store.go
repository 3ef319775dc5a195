package loginhistorystore

import (
	dbmodels "worktrack-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.LoginHistory) error
	List(page, limit int) (list []dbmodels.LoginHistory, err error)
	ListCount() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LoginHistory) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(page, limit int) (list []dbmodels.LoginHistory, err error) {
	err = i.db.Model(dbmodels.LoginHistory{}).
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

func (i impl) ListCount() (count int64, err error) {
	err = i.db.Model(dbmodels.LoginHistory{}).
		Count(&count).
		Error
	return count, err
}
