package dbmodels

import (
	"time"
	"worktrack-backend/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Job struct {
	BaseModel
	Number      string `gorm:"type:varchar(20);uniqueIndex"` // человекочитаемый номер, JOB001
	Title       string `gorm:"type:varchar(255)"`
	Description string
	Department  string             `gorm:"type:varchar(255);index"`
	AssigneeID  *string            `gorm:"type:varchar(36);index"`
	Assignee    *Employee          `gorm:"foreignKey:AssigneeID"`
	Status      models.JobStatus   `gorm:"type:varchar(50);index"`
	Priority    models.JobPriority `gorm:"type:varchar(20)"`
	DueDate     *time.Time
	Progress    int
	Tags        pq.StringArray `gorm:"type:text[]"`
	CreatedByID *string        `gorm:"type:varchar(36)"`
	CreatedBy   *User          `gorm:"foreignKey:CreatedByID"`
	History     []JobHistory   `gorm:"foreignKey:JobID"`
	Approvals   []Approval     `gorm:"foreignKey:JobID"`
}

// AfterDelete - история, согласования и вложения живут только вместе с задачей
func (j *Job) AfterDelete(tx *gorm.DB) (err error) {
	if j.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&JobHistory{})
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&Approval{})
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&JobAttachment{})
	return
}

type JobHistory struct {
	BaseModel
	JobID   string `gorm:"type:varchar(36);index"`
	Action  string `gorm:"type:varchar(100)"`
	Actor   string `gorm:"type:varchar(255)"`
	ActorID *string
	Details string
}

type JobAttachment struct {
	BaseModel
	JobID        string `gorm:"type:varchar(36);index"`
	FileName     string `gorm:"type:varchar(255)"`
	ObjectKey    string `gorm:"type:varchar(100)"`
	Size         int64
	UploadedBy   string `gorm:"type:varchar(255)"`
	UploadedByID *string
}
