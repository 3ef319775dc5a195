package models

// DepartmentAll - служебное значение отдела.
// У актора означает неограниченную область видимости,
// у сотрудника или задачи может быть и буквальным отделом.
const DepartmentAll = "All"

type Department string

func (d Department) IsWildcard() bool {
	return string(d) == DepartmentAll
}

type DepartmentStatus string

const (
	DepartmentStatusActive   DepartmentStatus = "active"
	DepartmentStatusInactive DepartmentStatus = "inactive"
)

func (s DepartmentStatus) IsValid() bool {
	return s == DepartmentStatusActive || s == DepartmentStatusInactive
}
