package models

type JobStatus string

const (
	JobStatusDraft           JobStatus = "draft"
	JobStatusPendingApproval JobStatus = "pending_approval"
	JobStatusPending         JobStatus = "pending"
	JobStatusInProgress      JobStatus = "in_progress"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusOverdue         JobStatus = "overdue"
	JobStatusCancelled       JobStatus = "cancelled"
	JobStatusOnHold          JobStatus = "on_hold"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusDraft:           "Черновик",
	JobStatusPendingApproval: "На согласовании",
	JobStatusPending:         "К выполнению",
	JobStatusInProgress:      "В работе",
	JobStatusCompleted:       "Завершена",
	JobStatusOverdue:         "Просрочена",
	JobStatusCancelled:       "Отменена",
	JobStatusOnHold:          "Приостановлена",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// allowedTransitions - переходы, доступные через явную смену статуса.
// Статусы draft/pending_approval меняются только движком жизненного цикла
// (создание задачи и решение по согласованию).
var allowedTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:      {JobStatusPending, JobStatusCancelled},
	JobStatusPending:    {JobStatusInProgress, JobStatusOnHold, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusOnHold, JobStatusOverdue, JobStatusCancelled},
	JobStatusOnHold:     {JobStatusInProgress, JobStatusCancelled},
	JobStatusOverdue:    {JobStatusInProgress, JobStatusCompleted, JobStatusCancelled},
}

func (s JobStatus) IsAllowChange(newStatus JobStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s JobStatus) IsValid() bool {
	_, exist := jobStatusHumanName[s]
	return exist
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityMedium JobPriority = "medium"
	JobPriorityHigh   JobPriority = "high"
	JobPriorityUrgent JobPriority = "urgent"
)

func (p JobPriority) IsValid() bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityUrgent:
		return true
	}
	return false
}
