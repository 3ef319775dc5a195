package models

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsFinal - решение принято, запись больше не меняется
func (s ApprovalStatus) IsFinal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// ApprovalTypeJobCreation - единственный тип согласования,
// связанный с жизненным циклом задачи
const ApprovalTypeJobCreation = "Job Creation"
