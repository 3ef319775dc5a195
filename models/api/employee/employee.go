package employeeapimodels

import (
	"time"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"
)

type EmployeeView struct {
	ID         string                `json:"id"`
	Number     string                `json:"employee_number"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Department string                `json:"department"`
	Position   string                `json:"position"`
	Role       models.UserRole       `json:"role"`
	RoleName   string                `json:"role_name"`
	Status     models.EmployeeStatus `json:"status"`
	HireDate   string                `json:"hire_date,omitempty"`
	Supervisor string                `json:"supervisor,omitempty"`
	Phone      string                `json:"phone,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:         rec.ID,
		Number:     rec.Number,
		Name:       rec.Name,
		Email:      rec.Email,
		Department: rec.Department,
		Position:   rec.Position,
		Role:       rec.GetRole(),
		RoleName:   rec.GetRole().ToHuman(),
		Status:     rec.Status,
		Supervisor: rec.Supervisor,
		Phone:      rec.Phone,
	}
	if !rec.HireDate.IsZero() {
		view.HireDate = rec.HireDate.Format(apimodels.DateFormat)
	}
	return view
}

type EmployeeData struct {
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Department string                `json:"department"`
	Position   string                `json:"position"`
	Role       models.UserRole       `json:"role"`
	Status     models.EmployeeStatus `json:"status"`
	HireDate   string                `json:"hire_date"`
	Supervisor string                `json:"supervisor"`
	Phone      string                `json:"phone"`
}

func (d EmployeeData) Validate() error {
	if d.Name == "" {
		return errs.Validationf("не указано имя сотрудника")
	}
	if d.Email == "" {
		return errs.Validationf("не указана почта сотрудника")
	}
	if d.Department == "" {
		return errs.Validationf("не указан отдел")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errs.Validationf("неизвестный статус сотрудника: %v", d.Status)
	}
	if d.HireDate != "" {
		if _, err := time.Parse(apimodels.DateFormat, d.HireDate); err != nil {
			return errs.Validationf("некорректная дата приёма: %v", d.HireDate)
		}
	}
	return nil
}

func (d EmployeeData) GetHireDate() time.Time {
	t, _ := time.Parse(apimodels.DateFormat, d.HireDate)
	return t
}

type EmployeeFilter struct {
	apimodels.Pagination
	Department string                `query:"department"`
	Role       models.UserRole       `query:"role"`
	Status     models.EmployeeStatus `query:"status"`
	Search     string                `query:"search"`
}
