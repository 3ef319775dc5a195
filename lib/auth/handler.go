package authhandler

import (
	"time"
	"worktrack-backend/db"
	loginhistorystore "worktrack-backend/lib/login-history/store"
	usersstore "worktrack-backend/lib/users/store"
	authutils "worktrack-backend/lib/utils/auth-utils"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	authapimodels "worktrack-backend/models/api/auth"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(data authapimodels.LoginRequest, ip, userAgent string) (authapimodels.LoginResponse, error)
	Me(actor models.Actor) (authapimodels.ProfileView, error)
	UpdateProfile(actor models.Actor, data authapimodels.ProfileUpdateData) error
	LoginHistory(pg apimodels.Pagination) ([]authapimodels.LoginHistoryView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:        usersstore.NewInstance(db.DB),
		loginHistoryStore: loginhistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore        usersstore.Provider
	loginHistoryStore loginhistorystore.Provider
}

func (i impl) Login(data authapimodels.LoginRequest, ip, userAgent string) (authapimodels.LoginResponse, error) {
	err := data.Validate()
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	authorized := user != nil && user.IsActive && user.Password == authutils.GetMD5Hash(data.Password)
	i.audit(user, data.Email, ip, userAgent, authorized)
	if !authorized {
		return authapimodels.LoginResponse{}, errs.Forbiddenf("неверная почта или пароль")
	}
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = *user.EmployeeID
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.GetRole(), user.Department, employeeID)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.WithError(err).Error("ошибка обновления времени входа")
	}
	return authapimodels.LoginResponse{
		Token: token,
		User:  authapimodels.ProfileConvert(*user),
	}, nil
}

// audit - запись в журнал входов, в том числе неудачных попыток
func (i impl) audit(user *dbmodels.User, email, ip, userAgent string, success bool) {
	rec := dbmodels.LoginHistory{
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Success:   success,
	}
	if user != nil {
		rec.UserID = &user.ID
	}
	err := i.loginHistoryStore.Create(rec)
	if err != nil {
		log.WithError(err).WithField("email", email).Error("ошибка записи в журнал входов")
	}
}

func (i impl) Me(actor models.Actor) (authapimodels.ProfileView, error) {
	user, err := i.usersStore.GetByID(actor.UserID)
	if err != nil {
		return authapimodels.ProfileView{}, err
	}
	if user == nil {
		return authapimodels.ProfileView{}, errs.NotFoundf("пользователь не найден: %v", actor.UserID)
	}
	return authapimodels.ProfileConvert(*user), nil
}

func (i impl) UpdateProfile(actor models.Actor, data authapimodels.ProfileUpdateData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if data.Name != "" {
		updMap["name"] = data.Name
	}
	if data.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(data.Password)
	}
	return i.usersStore.Update(actor.UserID, updMap)
}

func (i impl) LoginHistory(pg apimodels.Pagination) ([]authapimodels.LoginHistoryView, int64, error) {
	page, limit := pg.GetPage()
	list, err := i.loginHistoryStore.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.loginHistoryStore.ListCount()
	if err != nil {
		return nil, 0, err
	}
	result := make([]authapimodels.LoginHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, authapimodels.LoginHistoryConvert(rec))
	}
	return result, count, nil
}
