package departmentapimodels

import (
	"worktrack-backend/models"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"
)

type DepartmentView struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Head          string                  `json:"head,omitempty"`
	EmployeeCount int64                   `json:"employee_count"`
	Budget        float64                 `json:"budget"`
	Status        models.DepartmentStatus `json:"status"`
	IsDefault     bool                    `json:"is_default"`
}

func DepartmentConvert(rec dbmodels.Department, employeeCount int64) DepartmentView {
	return DepartmentView{
		ID:            rec.ID,
		Name:          rec.Name,
		Head:          rec.Head,
		EmployeeCount: employeeCount,
		Budget:        rec.Budget,
		Status:        rec.Status,
		IsDefault:     rec.IsDefault,
	}
}

type DepartmentData struct {
	Name   string                  `json:"name"`
	Head   string                  `json:"head"`
	Budget float64                 `json:"budget"`
	Status models.DepartmentStatus `json:"status"`
}

func (d DepartmentData) Validate() error {
	if d.Name == "" {
		return errs.Validationf("не указано название отдела")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errs.Validationf("неизвестный статус отдела: %v", d.Status)
	}
	return nil
}
