package models

type NotificationCode string

const (
	NotificationJobAssigned      NotificationCode = "job_assigned"
	NotificationJobStatusChanged NotificationCode = "job_status_changed"
	NotificationApprovalRequest  NotificationCode = "approval_request"
	NotificationApprovalResolved NotificationCode = "approval_resolved"
	NotificationSystemAlert      NotificationCode = "system_alert"
)
