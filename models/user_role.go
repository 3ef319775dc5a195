package models

type UserRole string

const (
	RoleEmployee    UserRole = "employee"
	RoleSupervisor  UserRole = "supervisor"
	RoleManager     UserRole = "manager"
	RoleGm          UserRole = "gm"
	RoleHrAdmin     UserRole = "hr_admin"
	RoleSystemAdmin UserRole = "system_admin"
)

// AllRoles - закрытый перечень ролей системы
func AllRoles() []UserRole {
	return []UserRole{RoleEmployee, RoleSupervisor, RoleManager, RoleGm, RoleHrAdmin, RoleSystemAdmin}
}

var roleHumanName = map[UserRole]string{
	RoleEmployee:    "Сотрудник",
	RoleSupervisor:  "Руководитель отдела",
	RoleManager:     "Менеджер",
	RoleGm:          "Генеральный директор",
	RoleHrAdmin:     "HR администратор",
	RoleSystemAdmin: "Системный администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// CanCreateJobs - только эти роли могут создавать задачи
func (r UserRole) CanCreateJobs() bool {
	return r == RoleSystemAdmin || r == RoleGm || r == RoleSupervisor
}

func (r UserRole) CanDeleteJobs() bool {
	return r == RoleSystemAdmin || r == RoleGm || r == RoleSupervisor || r == RoleHrAdmin
}

// IsDeptScoped - видимость задач ограничена отделом (если отдел не "All")
func (r UserRole) IsDeptScoped() bool {
	return r == RoleSupervisor || r == RoleGm
}

const SystemUser = "Система"
