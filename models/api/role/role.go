package roleapimodels

import (
	"worktrack-backend/models"
)

// RoleView - роль из закрытого перечня с числом пользователей
type RoleView struct {
	Code      models.UserRole `json:"code"`
	Name      string          `json:"name"`
	UserCount int64           `json:"user_count"`
}
