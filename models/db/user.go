package dbmodels

import (
	"time"
	"worktrack-backend/models"
)

type User struct {
	BaseModel
	Name       string          `gorm:"type:varchar(255)"`
	Email      string          `gorm:"type:varchar(255);uniqueIndex"`
	Password   string          `gorm:"type:varchar(128)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	Department string          `gorm:"type:varchar(255)"`
	EmployeeID *string         `gorm:"type:varchar(36)"`
	Employee   *Employee       `gorm:"foreignKey:EmployeeID"`
	IsActive   bool
	LastLogin  time.Time
}

func (u User) GetRole() models.UserRole {
	if u.Role == "" {
		return models.RoleEmployee
	}
	return u.Role
}
