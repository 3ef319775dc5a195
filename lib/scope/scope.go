package scope

import (
	"worktrack-backend/models"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"
)

// InScope - входит ли отдел в область видимости актора.
// Значение "All" у актора снимает ограничение; у проверяемой записи
// это обычный отдел и отдельно не трактуется.
func InScope(actorDepartment, department string) bool {
	return models.Department(actorDepartment).IsWildcard() || department == actorDepartment
}

// AssignableRoles - какие роли исполнителей доступны создателю задач.
// nil означает отсутствие ограничения, пустой срез - назначение недоступно.
func AssignableRoles(creatorRole models.UserRole) []models.UserRole {
	switch creatorRole {
	case models.RoleSystemAdmin:
		return nil
	case models.RoleGm:
		return []models.UserRole{models.RoleSupervisor, models.RoleEmployee}
	case models.RoleSupervisor:
		return []models.UserRole{models.RoleEmployee}
	}
	return []models.UserRole{}
}

// ValidateAssignee проверяет назначение исполнителя по роли и отделу создателя.
// Порядок проверок фиксированный: сначала отдел, затем роль кандидата.
func ValidateAssignee(creatorRole models.UserRole, creatorDepartment string, assignee dbmodels.Employee) error {
	if creatorRole == models.RoleSystemAdmin {
		return nil
	}
	switch creatorRole {
	case models.RoleGm:
		if !InScope(creatorDepartment, assignee.Department) {
			return errs.ErrOutOfScope
		}
		if !roleAllowed(assignee.GetRole(), AssignableRoles(creatorRole)) {
			return errs.ErrRoleNotAssignable
		}
	case models.RoleSupervisor:
		if !InScope(creatorDepartment, assignee.Department) {
			return errs.ErrOutOfScope
		}
		if !roleAllowed(assignee.GetRole(), AssignableRoles(creatorRole)) {
			return errs.ErrRoleNotAssignable
		}
	}
	// остальные роли до создания задач не допускаются раньше,
	// на этапе проверки прав
	return nil
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	if allowed == nil {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
