package dbmodels

import (
	"worktrack-backend/models"
)

type Notification struct {
	BaseModel
	UserID string                  `gorm:"type:varchar(36);index"`
	Code   models.NotificationCode `gorm:"type:varchar(50)"`
	Msg    string
	Read   bool
}

type UserNotificationSettings struct {
	BaseModel
	UserID           string `gorm:"type:varchar(36);uniqueIndex"`
	Email            *bool
	Push             *bool
	JobUpdates       *bool
	ApprovalRequests *bool
	SystemAlerts     *bool
}

func (s UserNotificationSettings) EmailEnabled() bool {
	return s.Email == nil || *s.Email
}

func (s UserNotificationSettings) PushEnabled() bool {
	return s.Push == nil || *s.Push
}

// CodeEnabled - включено ли событие в настройках пользователя
func (s UserNotificationSettings) CodeEnabled(code models.NotificationCode) bool {
	var v *bool
	switch code {
	case models.NotificationJobAssigned, models.NotificationJobStatusChanged:
		v = s.JobUpdates
	case models.NotificationApprovalRequest, models.NotificationApprovalResolved:
		v = s.ApprovalRequests
	case models.NotificationSystemAlert:
		v = s.SystemAlerts
	}
	return v == nil || *v
}
