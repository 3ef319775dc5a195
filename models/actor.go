package models

// Actor - контекст пользователя, восстановленный из JWT клейм токена
type Actor struct {
	UserID     string
	Name       string
	Role       UserRole
	Department string
	EmployeeID string // ссылка на запись сотрудника, может быть пустой
}

func (a Actor) GetRole() UserRole {
	if a.Role == "" {
		return RoleEmployee
	}
	return a.Role
}
