package jobattachmentstore

import (
	dbmodels "worktrack-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.JobAttachment) (string, error)
	GetByID(jobID, id string) (rec *dbmodels.JobAttachment, err error)
	ListByJob(jobID string) (list []dbmodels.JobAttachment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobAttachment) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(jobID, id string) (rec *dbmodels.JobAttachment, err error) {
	err = i.db.Model(dbmodels.JobAttachment{}).
		Where("id = ?", id).
		Where("job_id = ?", jobID).
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

func (i impl) ListByJob(jobID string) (list []dbmodels.JobAttachment, err error) {
	err = i.db.Model(dbmodels.JobAttachment{}).
		Where("job_id = ?", jobID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
