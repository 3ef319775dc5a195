package db

import (
	log "github.com/sirupsen/logrus"
	"worktrack-backend/config"
	departmentstore "worktrack-backend/lib/department/store"
	usersstore "worktrack-backend/lib/users/store"
	authutils "worktrack-backend/lib/utils/auth-utils"
	"worktrack-backend/models"
	dbmodels "worktrack-backend/models/db"
)

func InitPreload() {
	fillDefaultAdmin()
	fillDefaultDepartment()
}

// fillDefaultAdmin создаёт системного администратора при первом запуске
func fillDefaultAdmin() {
	store := usersstore.NewInstance(DB)
	exist, err := store.ExistByEmail(config.Conf.Auth.AdminEmail)
	if err != nil {
		log.WithError(err).Error("ошибка проверки учётной записи администратора")
		return
	}
	if exist {
		return
	}
	rec := dbmodels.User{
		Name:       config.Conf.Auth.AdminName,
		Email:      config.Conf.Auth.AdminEmail,
		Password:   authutils.GetMD5Hash(config.Conf.Auth.AdminPassword),
		Role:       models.RoleSystemAdmin,
		Department: models.DepartmentAll,
		IsActive:   true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания учётной записи администратора")
		return
	}
	log.Info("создана учётная запись системного администратора")
}

// fillDefaultDepartment создаёт служебный отдел "All" при первом запуске
func fillDefaultDepartment() {
	store := departmentstore.NewInstance(DB)
	existing, err := store.FindByName(models.DepartmentAll)
	if err != nil {
		log.WithError(err).Error("ошибка проверки отдела по умолчанию")
		return
	}
	if existing != nil {
		return
	}
	rec := dbmodels.Department{
		Name:      models.DepartmentAll,
		Status:    models.DepartmentStatusActive,
		IsDefault: true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания отдела по умолчанию")
		return
	}
	log.Info("создан отдел по умолчанию")
}
