package dbmodels

import (
	"time"
	"worktrack-backend/models"
)

// Approval хранит срез данных задачи на момент подачи (jobTitle/jobDueDate) -
// намеренная денормализация для аудита, не кэш.
type Approval struct {
	BaseModel
	Type        string  `gorm:"type:varchar(100)"`
	Requester   string  `gorm:"type:varchar(255)"`
	RequesterID *string `gorm:"type:varchar(36)"`
	Department  string  `gorm:"type:varchar(255)"`
	Status      models.ApprovalStatus `gorm:"type:varchar(50);index"`
	SubmittedAt time.Time
	Description string
	JobID       *string `gorm:"type:varchar(36);index"`
	Job         *Job    `gorm:"foreignKey:JobID"`
	JobTitle    string  `gorm:"type:varchar(255)"`
	JobDueDate  *time.Time
	ResolvedBy  string `gorm:"type:varchar(255)"`
	ResolvedAt  *time.Time
	Remark      string
}
