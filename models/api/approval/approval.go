package approvalapimodels

import (
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	dbmodels "worktrack-backend/models/db"
)

type ApprovalView struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"`
	Requester   string                `json:"requester"`
	Department  string                `json:"department"`
	Status      models.ApprovalStatus `json:"status"`
	SubmittedAt string                `json:"submitted_at"`
	Description string                `json:"description,omitempty"`
	JobID       string                `json:"job_id,omitempty"`
	JobTitle    string                `json:"job_title,omitempty"`
	JobDueDate  string                `json:"job_due_date,omitempty"`
	ResolvedBy  string                `json:"resolved_by,omitempty"`
	ResolvedAt  string                `json:"resolved_at,omitempty"`
	Remark      string                `json:"remark,omitempty"`
}

func ApprovalConvert(rec dbmodels.Approval) ApprovalView {
	view := ApprovalView{
		ID:          rec.ID,
		Type:        rec.Type,
		Requester:   rec.Requester,
		Department:  rec.Department,
		Status:      rec.Status,
		SubmittedAt: rec.SubmittedAt.Format(apimodels.DateFormat),
		Description: rec.Description,
		JobTitle:    rec.JobTitle,
		ResolvedBy:  rec.ResolvedBy,
		Remark:      rec.Remark,
	}
	if rec.JobID != nil {
		view.JobID = *rec.JobID
	}
	if rec.JobDueDate != nil {
		view.JobDueDate = rec.JobDueDate.Format(apimodels.DateFormat)
	}
	if rec.ResolvedAt != nil {
		view.ResolvedAt = rec.ResolvedAt.Format(apimodels.DateFormat)
	}
	return view
}

type DecisionData struct {
	Comment string `json:"comment"` // комментарий при согласовании
	Reason  string `json:"reason"`  // причина при отклонении
}

type ApprovalFilter struct {
	apimodels.Pagination
	Status models.ApprovalStatus `query:"status"`
	Type   string                `query:"type"`
	Search string                `query:"search"`
}

// DecisionView - краткий ответ на approve/reject
type DecisionView struct {
	ID     string                `json:"id"`
	Status models.ApprovalStatus `json:"status"`
}
