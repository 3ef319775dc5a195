package dbmodels

import (
	"time"
	"worktrack-backend/models"
)

type Employee struct {
	BaseModel
	Number     string                `gorm:"type:varchar(20);uniqueIndex"` // табельный номер, EMP001
	Name       string                `gorm:"type:varchar(255)"`
	Email      string                `gorm:"type:varchar(255)"`
	Department string                `gorm:"type:varchar(255);index"`
	Position   string                `gorm:"type:varchar(255)"`
	Role       models.UserRole       `gorm:"type:varchar(50)"`
	Status     models.EmployeeStatus `gorm:"type:varchar(50);index"`
	HireDate   time.Time
	Supervisor string  `gorm:"type:varchar(255)"`
	Phone      string  `gorm:"type:varchar(50)"`
	UserID     *string `gorm:"type:varchar(36)"`
}

func (e Employee) GetRole() models.UserRole {
	if e.Role == "" {
		return models.RoleEmployee
	}
	return e.Role
}

func (e Employee) IsActive() bool {
	return e.Status == models.EmployeeStatusActive
}
