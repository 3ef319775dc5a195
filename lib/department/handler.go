package departmenthandler

import (
	"worktrack-backend/db"
	departmentstore "worktrack-backend/lib/department/store"
	employeestore "worktrack-backend/lib/employee/store"
	"worktrack-backend/models"
	departmentapimodels "worktrack-backend/models/api/department"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"
)

type Provider interface {
	Create(data departmentapimodels.DepartmentData) (departmentapimodels.DepartmentView, error)
	GetByID(id string) (departmentapimodels.DepartmentView, error)
	Update(id string, data departmentapimodels.DepartmentData) error
	Delete(id string) error
	List() ([]departmentapimodels.DepartmentView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         departmentstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         departmentstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Create(data departmentapimodels.DepartmentData) (departmentapimodels.DepartmentView, error) {
	err := data.Validate()
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	existing, err := i.store.FindByName(data.Name)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	if existing != nil {
		return departmentapimodels.DepartmentView{}, errs.Validationf("отдел с таким названием уже существует: %v", data.Name)
	}
	rec := dbmodels.Department{
		Name:   data.Name,
		Head:   data.Head,
		Budget: data.Budget,
		Status: data.Status,
	}
	if rec.Status == "" {
		rec.Status = models.DepartmentStatusActive
	}
	recID, err := i.store.Create(rec)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	rec.ID = recID
	return departmentapimodels.DepartmentConvert(rec, 0), nil
}

func (i impl) GetByID(id string) (departmentapimodels.DepartmentView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return departmentapimodels.DepartmentView{}, errs.NotFoundf("отдел не найден: %v", id)
	}
	count, err := i.employeeStore.CountByDepartment(rec.Name)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	return departmentapimodels.DepartmentConvert(*rec, count), nil
}

func (i impl) Update(id string, data departmentapimodels.DepartmentData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFoundf("отдел не найден: %v", id)
	}
	updMap := map[string]interface{}{
		"head":   data.Head,
		"budget": data.Budget,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	if data.Name != rec.Name {
		// отдел "All" служит признаком неограниченной области видимости
		if rec.IsDefault {
			return errs.Validationf("название отдела %q нельзя изменить", rec.Name)
		}
		existing, err := i.store.FindByName(data.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.Validationf("отдел с таким названием уже существует: %v", data.Name)
		}
		updMap["name"] = data.Name
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFoundf("отдел не найден: %v", id)
	}
	if rec.IsDefault {
		return errs.Validationf("отдел %q нельзя удалить", rec.Name)
	}
	return i.store.Delete(id)
}

func (i impl) List() ([]departmentapimodels.DepartmentView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]departmentapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		count, err := i.employeeStore.CountByDepartment(rec.Name)
		if err != nil {
			return nil, err
		}
		result = append(result, departmentapimodels.DepartmentConvert(rec, count))
	}
	return result, nil
}
