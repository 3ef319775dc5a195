package roleshandler

import (
	"worktrack-backend/db"
	usersstore "worktrack-backend/lib/users/store"
	"worktrack-backend/models"
	roleapimodels "worktrack-backend/models/api/role"
	"worktrack-backend/models/errs"
)

// Роли образуют закрытый перечень, на который завязаны правила доступа,
// поэтому справочник доступен только на чтение.
type Provider interface {
	List() ([]roleapimodels.RoleView, error)
	GetByCode(code models.UserRole) (roleapimodels.RoleView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) List() ([]roleapimodels.RoleView, error) {
	roles := models.AllRoles()
	result := make([]roleapimodels.RoleView, 0, len(roles))
	for _, role := range roles {
		count, err := i.usersStore.CountByRole(role)
		if err != nil {
			return nil, err
		}
		result = append(result, roleapimodels.RoleView{
			Code:      role,
			Name:      role.ToHuman(),
			UserCount: count,
		})
	}
	return result, nil
}

func (i impl) GetByCode(code models.UserRole) (roleapimodels.RoleView, error) {
	known := false
	for _, role := range models.AllRoles() {
		if role == code {
			known = true
			break
		}
	}
	if !known {
		return roleapimodels.RoleView{}, errs.NotFoundf("роль не найдена: %v", code)
	}
	count, err := i.usersStore.CountByRole(code)
	if err != nil {
		return roleapimodels.RoleView{}, err
	}
	return roleapimodels.RoleView{
		Code:      code,
		Name:      code.ToHuman(),
		UserCount: count,
	}, nil
}
