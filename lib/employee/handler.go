package employeehandler

import (
	"worktrack-backend/db"
	employeestore "worktrack-backend/lib/employee/store"
	"worktrack-backend/models"
	employeeapimodels "worktrack-backend/models/api/employee"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"gorm.io/gorm"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	GetByID(id string) (employeeapimodels.EmployeeView, error)
	Update(id string, data employeeapimodels.EmployeeData) error
	Delete(id string) error
	List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	err := data.Validate()
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	rec := dbmodels.Employee{
		Name:       data.Name,
		Email:      data.Email,
		Department: data.Department,
		Position:   data.Position,
		Role:       data.Role,
		Status:     data.Status,
		HireDate:   data.GetHireDate(),
		Supervisor: data.Supervisor,
		Phone:      data.Phone,
	}
	if rec.Status == "" {
		rec.Status = models.EmployeeStatusActive
	}
	// номер выделяется в одной транзакции с записью
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := employeestore.NewInstance(tx)
		number, err := txStore.NextNumber()
		if err != nil {
			return err
		}
		rec.Number = number
		recID, err := txStore.Create(rec)
		if err != nil {
			return err
		}
		rec.ID = recID
		return nil
	})
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return employeeapimodels.EmployeeConvert(rec), nil
}

func (i impl) GetByID(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, errs.NotFoundf("сотрудник не найден: %v", id)
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFoundf("сотрудник не найден: %v", id)
	}
	updMap := map[string]interface{}{
		"name":       data.Name,
		"email":      data.Email,
		"department": data.Department,
		"position":   data.Position,
		"supervisor": data.Supervisor,
		"phone":      data.Phone,
	}
	if data.Role != "" {
		updMap["role"] = data.Role
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	if data.HireDate != "" {
		updMap["hire_date"] = data.GetHireDate()
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFoundf("сотрудник не найден: %v", id)
	}
	return i.store.Delete(id)
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, count, nil
}
