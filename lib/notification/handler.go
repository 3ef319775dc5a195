package notificationhandler

import (
	"time"
	"worktrack-backend/db"
	notificationsettingsstore "worktrack-backend/lib/notification/settings-store"
	notificationstore "worktrack-backend/lib/notification/store"
	"worktrack-backend/lib/smtp"
	usersstore "worktrack-backend/lib/users/store"
	connectionhub "worktrack-backend/lib/ws/hub/connection-hub"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	notificationapimodels "worktrack-backend/models/api/notification"
	dbmodels "worktrack-backend/models/db"
	wsmodels "worktrack-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Notify(userID string, code models.NotificationCode, msg string)
	List(actor models.Actor, pg apimodels.Pagination) ([]notificationapimodels.NotificationView, int64, error)
	MarkRead(actor models.Actor, id string) error
	MarkAllRead(actor models.Actor) error
	GetSettings(actor models.Actor) (notificationapimodels.SettingsView, error)
	UpdateSettings(actor models.Actor, data notificationapimodels.SettingsData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		settingsStore: notificationsettingsstore.NewInstance(db.DB),
		usersStore:    usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         notificationstore.Provider
	settingsStore notificationsettingsstore.Provider
	usersStore    usersstore.Provider
}

func (i impl) getLogger(userID string, code models.NotificationCode) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("event_code", string(code))
}

// Notify - уведомление пользователя по событию. Ошибки доставки не
// прерывают вызвавшую операцию, только логируются.
func (i impl) Notify(userID string, code models.NotificationCode, msg string) {
	if userID == "" {
		return
	}
	logger := i.getLogger(userID, code)
	settings := dbmodels.UserNotificationSettings{}
	stored, err := i.settingsStore.GetByUser(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения настроек уведомлений")
		return
	}
	if stored != nil {
		settings = *stored
	}
	if !settings.CodeEnabled(code) {
		return
	}
	rec := dbmodels.Notification{
		UserID: userID,
		Code:   code,
		Msg:    msg,
	}
	err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
		return
	}
	if settings.PushEnabled() && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     string(code),
			Msg:      msg,
		})
	}
	if settings.EmailEnabled() {
		i.sendEmail(userID, code, msg)
	}
}

func (i impl) sendEmail(userID string, code models.NotificationCode, msg string) {
	logger := i.getLogger(userID, code)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	err = smtp.Instance.SendEMail(models.SystemUser, user.Email, msg, "Уведомление")
	if err != nil {
		logger.WithError(err).Error("ошибка отправки email уведомления")
	}
}

func (i impl) List(actor models.Actor, pg apimodels.Pagination) ([]notificationapimodels.NotificationView, int64, error) {
	list, err := i.store.List(actor.UserID, pg)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.store.ListCount(actor.UserID)
	if err != nil {
		return nil, 0, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, count, nil
}

func (i impl) MarkRead(actor models.Actor, id string) error {
	return i.store.MarkRead(actor.UserID, id)
}

func (i impl) MarkAllRead(actor models.Actor) error {
	return i.store.MarkAllRead(actor.UserID)
}

func (i impl) GetSettings(actor models.Actor) (notificationapimodels.SettingsView, error) {
	rec, err := i.settingsStore.GetByUser(actor.UserID)
	if err != nil {
		return notificationapimodels.SettingsView{}, err
	}
	if rec == nil {
		// настройки по умолчанию - всё включено
		return notificationapimodels.SettingsConvert(dbmodels.UserNotificationSettings{}), nil
	}
	return notificationapimodels.SettingsConvert(*rec), nil
}

func (i impl) UpdateSettings(actor models.Actor, data notificationapimodels.SettingsData) error {
	rec, err := i.settingsStore.GetByUser(actor.UserID)
	if err != nil {
		return err
	}
	if rec == nil {
		newRec := dbmodels.UserNotificationSettings{
			UserID:           actor.UserID,
			Email:            data.Email,
			Push:             data.Push,
			JobUpdates:       data.JobUpdates,
			ApprovalRequests: data.ApprovalRequests,
			SystemAlerts:     data.SystemAlerts,
		}
		return i.settingsStore.Create(newRec)
	}
	return i.settingsStore.Update(actor.UserID, data.ToUpdMap())
}
