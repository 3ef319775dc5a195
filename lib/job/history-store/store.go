package jobhistorystore

import (
	dbmodels "worktrack-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.JobHistory) error
	ListByJob(jobID string) (list []dbmodels.JobHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create - только добавление, записи истории никогда не обновляются
func (i impl) Create(rec dbmodels.JobHistory) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) ListByJob(jobID string) (list []dbmodels.JobHistory, err error) {
	err = i.db.Model(dbmodels.JobHistory{}).
		Where("job_id = ?", jobID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
