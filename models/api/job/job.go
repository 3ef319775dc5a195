package jobapimodels

import (
	"time"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"
)

// AssigneeView - сокращённая проекция исполнителя в ответах по задачам
type AssigneeView struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type JobView struct {
	ID          string             `json:"id"`
	Number      string             `json:"job_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Department  string             `json:"department"`
	Assignee    *AssigneeView      `json:"assignee"`
	Status      models.JobStatus   `json:"status"`
	StatusName  string             `json:"status_name"`
	Priority    models.JobPriority `json:"priority"`
	DueDate     string             `json:"due_date,omitempty"`
	Progress    int                `json:"progress"`
	Tags        []string           `json:"tags,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	view := JobView{
		ID:          rec.ID,
		Number:      rec.Number,
		Title:       rec.Title,
		Description: rec.Description,
		Department:  rec.Department,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		Priority:    rec.Priority,
		Progress:    rec.Progress,
		Tags:        rec.Tags,
		CreatedAt:   rec.CreatedAt.Format(apimodels.DateFormat),
	}
	if rec.DueDate != nil {
		view.DueDate = rec.DueDate.Format(apimodels.DateFormat)
	}
	if rec.Assignee != nil {
		view.Assignee = &AssigneeView{
			ID:    rec.Assignee.ID,
			Name:  rec.Assignee.Name,
			Email: rec.Assignee.Email,
		}
	} else if rec.AssigneeID != nil {
		view.Assignee = &AssigneeView{ID: *rec.AssigneeID}
	}
	return view
}

type JobCreateData struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Department  string             `json:"department"`
	AssigneeID  string             `json:"assignee_id"`
	Priority    models.JobPriority `json:"priority"`
	DueDate     string             `json:"due_date"`
	Tags        []string           `json:"tags"`
	AutoApprove bool               `json:"auto_approve"`
}

func (d JobCreateData) Validate() error {
	if d.Title == "" {
		return errs.Validationf("не указано название задачи")
	}
	if d.Department == "" {
		return errs.Validationf("не указан отдел")
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		return errs.Validationf("неизвестный приоритет: %v", d.Priority)
	}
	if d.DueDate != "" {
		if _, err := time.Parse(apimodels.DateFormat, d.DueDate); err != nil {
			return errs.Validationf("некорректный срок выполнения: %v", d.DueDate)
		}
	}
	return nil
}

func (d JobCreateData) GetPriority() models.JobPriority {
	if d.Priority == "" {
		return models.JobPriorityMedium
	}
	return d.Priority
}

func (d JobCreateData) GetDueDate() *time.Time {
	if d.DueDate == "" {
		return nil
	}
	t, err := time.Parse(apimodels.DateFormat, d.DueDate)
	if err != nil {
		return nil
	}
	return &t
}

// JobEditData - общий путь обновления. Статус здесь отсутствует намеренно:
// все смены статуса идут через движок жизненного цикла.
type JobEditData struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Department  *string             `json:"department"`
	Priority    *models.JobPriority `json:"priority"`
	DueDate     *string             `json:"due_date"`
	Progress    *int                `json:"progress"`
	Tags        []string            `json:"tags"`
}

func (d JobEditData) Validate() error {
	if d.Title != nil && *d.Title == "" {
		return errs.Validationf("название задачи не может быть пустым")
	}
	if d.Priority != nil && !d.Priority.IsValid() {
		return errs.Validationf("неизвестный приоритет: %v", *d.Priority)
	}
	if d.DueDate != nil && *d.DueDate != "" {
		if _, err := time.Parse(apimodels.DateFormat, *d.DueDate); err != nil {
			return errs.Validationf("некорректный срок выполнения: %v", *d.DueDate)
		}
	}
	if d.Progress != nil && (*d.Progress < 0 || *d.Progress > 100) {
		return errs.Validationf("прогресс должен быть в диапазоне 0-100")
	}
	return nil
}

// GetDueDate - пустая строка снимает срок выполнения
func (d JobEditData) GetDueDate() *time.Time {
	if d.DueDate == nil || *d.DueDate == "" {
		return nil
	}
	t, err := time.Parse(apimodels.DateFormat, *d.DueDate)
	if err != nil {
		return nil
	}
	return &t
}

type JobAssignData struct {
	AssigneeID string `json:"assignee_id"` // пустое значение снимает исполнителя
}

type JobStatusData struct {
	Status models.JobStatus `json:"status"`
}

func (d JobStatusData) Validate() error {
	if !d.Status.IsValid() {
		return errs.Validationf("неизвестный статус задачи: %v", d.Status)
	}
	return nil
}

type JobFilter struct {
	apimodels.Pagination
	Status     models.JobStatus   `query:"status"`
	Priority   models.JobPriority `query:"priority"`
	Department string             `query:"department"`
	Search     string             `query:"search"`
	DateFrom   string             `query:"date_from"`
	DateTo     string             `query:"date_to"`
	View       string             `query:"view"` // my_jobs | assigned_jobs
}

type JobHistoryView struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

func JobHistoryConvert(rec dbmodels.JobHistory) JobHistoryView {
	return JobHistoryView{
		ID:        rec.ID,
		JobID:     rec.JobID,
		Action:    rec.Action,
		Actor:     rec.Actor,
		Details:   rec.Details,
		Timestamp: rec.CreatedAt.Format(time.RFC3339),
	}
}

type AttachmentView struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
	UploadedBy string `json:"uploaded_by"`
	CreatedAt  string `json:"created_at"`
}

func AttachmentConvert(rec dbmodels.JobAttachment) AttachmentView {
	return AttachmentView{
		ID:         rec.ID,
		FileName:   rec.FileName,
		Size:       rec.Size,
		UploadedBy: rec.UploadedBy,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}
