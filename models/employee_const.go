package models

type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusInactive   EmployeeStatus = "inactive"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeStatusActive:     "Работает",
	EmployeeStatusInactive:   "Неактивен",
	EmployeeStatusOnLeave:    "В отпуске",
	EmployeeStatusTerminated: "Уволен",
}

func (s EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s EmployeeStatus) IsValid() bool {
	_, exist := employeeStatusHumanName[s]
	return exist
}
