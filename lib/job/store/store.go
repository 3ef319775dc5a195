package jobstore

import (
	"fmt"
	"time"
	apimodels "worktrack-backend/models/api"
	jobapimodels "worktrack-backend/models/api/job"
	dbmodels "worktrack-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListScope - ограничения видимости списка, вычисленные по роли актора.
// Пустое поле означает отсутствие ограничения.
type ListScope struct {
	AssigneeID  string
	Department  string
	CreatedByID string
}

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter jobapimodels.JobFilter, scope ListScope) (list []dbmodels.Job, err error)
	ListCount(filter jobapimodels.JobFilter, scope ListScope) (int64, error)
	ListForExport(filter jobapimodels.JobFilter, scope ListScope) (list []dbmodels.Job, err error)
	NextNumber() (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Where("id = ?", id).
		Preload("Assignee").
		Preload("CreatedBy").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	// хук AfterDelete удаляет историю, согласования и вложения
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List(filter jobapimodels.JobFilter, scope ListScope) (list []dbmodels.Job, err error) {
	page, limit := filter.GetPage()
	tx := i.applyFilter(filter, scope)
	err = tx.
		Preload("Assignee").
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

// ListForExport - выгрузка без постраничности, с защитным потолком
func (i impl) ListForExport(filter jobapimodels.JobFilter, scope ListScope) (list []dbmodels.Job, err error) {
	err = i.applyFilter(filter, scope).
		Preload("Assignee").
		Order("number").
		Limit(10000).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter jobapimodels.JobFilter, scope ListScope) (count int64, err error) {
	err = i.applyFilter(filter, scope).
		Count(&count).
		Error
	return count, err
}

func (i impl) applyFilter(filter jobapimodels.JobFilter, scope ListScope) *gorm.DB {
	tx := i.db.Model(dbmodels.Job{})
	if scope.AssigneeID != "" {
		tx = tx.Where("assignee_id = ?", scope.AssigneeID)
	}
	if scope.Department != "" {
		tx = tx.Where("department = ?", scope.Department)
	}
	if scope.CreatedByID != "" {
		tx = tx.Where("created_by_id = ?", scope.CreatedByID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.Department != "" && scope.Department == "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR number ILIKE ? OR description ILIKE ?", search, search, search)
	}
	if filter.DateFrom != "" {
		if from, err := time.Parse(apimodels.DateFormat, filter.DateFrom); err == nil {
			tx = tx.Where("due_date >= ?", from)
		}
	}
	if filter.DateTo != "" {
		if to, err := time.Parse(apimodels.DateFormat, filter.DateTo); err == nil {
			tx = tx.Where("due_date <= ?", to)
		}
	}
	return tx
}

// NextNumber выдаёт следующий номер серии по максимальному существующему
// (сортировка по номеру, не по дате создания). Номера удалённых задач
// повторно не используются.
func (i impl) NextNumber() (string, error) {
	rec := dbmodels.Job{}
	err := i.db.Model(dbmodels.Job{}).
		Order("number desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FormatNumber(1), nil
		}
		return "", err
	}
	return FormatNumber(ParseNumber(rec.Number) + 1), nil
}

// ParseNumber извлекает числовую часть номера, отбрасывая нецифровые
// символы; при их отсутствии возвращает 0
func ParseNumber(number string) int {
	num := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			num = num*10 + int(r-'0')
		}
	}
	return num
}

func FormatNumber(num int) string {
	return fmt.Sprintf("JOB%03d", num)
}
