package notificationapimodels

import (
	"time"
	"worktrack-backend/models"
	dbmodels "worktrack-backend/models/db"
)

type NotificationView struct {
	ID        string                  `json:"id"`
	Code      models.NotificationCode `json:"code"`
	Msg       string                  `json:"msg"`
	Read      bool                    `json:"read"`
	CreatedAt string                  `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Code:      rec.Code,
		Msg:       rec.Msg,
		Read:      rec.Read,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}

type SettingsView struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	JobUpdates       bool `json:"job_updates"`
	ApprovalRequests bool `json:"approval_requests"`
	SystemAlerts     bool `json:"system_alerts"`
}

func SettingsConvert(rec dbmodels.UserNotificationSettings) SettingsView {
	enabled := func(v *bool) bool {
		return v == nil || *v
	}
	return SettingsView{
		Email:            enabled(rec.Email),
		Push:             enabled(rec.Push),
		JobUpdates:       enabled(rec.JobUpdates),
		ApprovalRequests: enabled(rec.ApprovalRequests),
		SystemAlerts:     enabled(rec.SystemAlerts),
	}
}

// SettingsData - частичное обновление, незаполненные поля не меняются
type SettingsData struct {
	Email            *bool `json:"email"`
	Push             *bool `json:"push"`
	JobUpdates       *bool `json:"job_updates"`
	ApprovalRequests *bool `json:"approval_requests"`
	SystemAlerts     *bool `json:"system_alerts"`
}

func (d SettingsData) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if d.Email != nil {
		updMap["email"] = *d.Email
	}
	if d.Push != nil {
		updMap["push"] = *d.Push
	}
	if d.JobUpdates != nil {
		updMap["job_updates"] = *d.JobUpdates
	}
	if d.ApprovalRequests != nil {
		updMap["approval_requests"] = *d.ApprovalRequests
	}
	if d.SystemAlerts != nil {
		updMap["system_alerts"] = *d.SystemAlerts
	}
	return updMap
}
