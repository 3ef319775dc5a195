package dbmodels

import (
	"worktrack-backend/models"
)

type Department struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);uniqueIndex"`
	Head      string `gorm:"type:varchar(255)"`
	Budget    float64
	Status    models.DepartmentStatus `gorm:"type:varchar(20)"`
	IsDefault bool                    // отдел "All", не удаляется и не переименовывается
}
