package approvalstore

import (
	"worktrack-backend/models"
	approvalapimodels "worktrack-backend/models/api/approval"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Approval) (string, error)
	GetByID(id string) (rec *dbmodels.Approval, err error)
	Update(id string, updMap map[string]interface{}) error
	Resolve(id string, updMap map[string]interface{}) error
	List(filter approvalapimodels.ApprovalFilter) (list []dbmodels.Approval, err error)
	ListCount(filter approvalapimodels.ApprovalFilter) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Approval) (string, error) {
	err := i.db.
		Omit("Job").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Approval, err error) {
	err = i.db.Model(dbmodels.Approval{}).
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Approval{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

// Resolve переводит запись из pending в терминальный статус. Условие по
// статусу делает решение однократным: параллельный конкурирующий вызов
// не затронет ни одной строки.
func (i impl) Resolve(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Approval{}).
		Where("id = ?", id).
		Where("status = ?", models.ApprovalStatusPending).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errs.ErrAlreadyProcessed
	}
	return nil
}

func (i impl) List(filter approvalapimodels.ApprovalFilter) (list []dbmodels.Approval, err error) {
	page, limit := filter.GetPage()
	err = i.applyFilter(filter).
		Order("submitted_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter approvalapimodels.ApprovalFilter) (count int64, err error) {
	err = i.applyFilter(filter).
		Count(&count).
		Error
	return count, err
}

func (i impl) applyFilter(filter approvalapimodels.ApprovalFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.Approval{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("requester ILIKE ? OR description ILIKE ?", search, search)
	}
	return tx
}
