package employeestore

import (
	"fmt"
	"worktrack-backend/models"
	employeeapimodels "worktrack-backend/models/api/employee"
	dbmodels "worktrack-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	ListCount(filter employeeapimodels.EmployeeFilter) (int64, error)
	ListActive(department string) (list []dbmodels.Employee, err error)
	CountByDepartment(department string) (int64, error)
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

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
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
		Model(&dbmodels.Employee{}).
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
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	page, limit := filter.GetPage()
	tx := i.applyFilter(filter)
	err = tx.
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	err = i.applyFilter(filter).
		Count(&count).
		Error
	return count, err
}

// ListActive - активные сотрудники для выбора исполнителя
func (i impl) ListActive(department string) (list []dbmodels.Employee, err error) {
	tx := i.db.Model(dbmodels.Employee{}).
		Where("status = ?", models.EmployeeStatusActive)
	if department != "" && !models.Department(department).IsWildcard() {
		tx = tx.Where("department = ?", department)
	}
	err = tx.
		Order("name").
		Limit(500).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountByDepartment - число сотрудников отдела, для "All" считаются все
func (i impl) CountByDepartment(department string) (count int64, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	if !models.Department(department).IsWildcard() {
		tx = tx.Where("department = ?", department)
	}
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) applyFilter(filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.Employee{})
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR number ILIKE ?", search, search, search)
	}
	return tx
}

// NextNumber - следующий табельный номер по максимальному существующему
func (i impl) NextNumber() (string, error) {
	rec := dbmodels.Employee{}
	err := i.db.Model(dbmodels.Employee{}).
		Order("number desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "EMP001", nil
		}
		return "", err
	}
	return fmt.Sprintf("EMP%03d", parseNumber(rec.Number)+1), nil
}

func parseNumber(number string) int {
	num := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			num = num*10 + int(r-'0')
		}
	}
	return num
}
