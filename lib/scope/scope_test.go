package scope

import (
	"testing"
	"worktrack-backend/models"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func employee(role models.UserRole, department string) dbmodels.Employee {
	return dbmodels.Employee{
		Name:       "Test Employee",
		Department: department,
		Role:       role,
		Status:     models.EmployeeStatusActive,
	}
}

func TestValidateAssignee(t *testing.T) {
	t.Run(`system_admin assigns anyone anywhere`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleSystemAdmin, "Engineering", employee(models.RoleGm, "Marketing"))
		require.Nil(t, err)
	})

	t.Run(`supervisor out of department`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleSupervisor, "Engineering", employee(models.RoleEmployee, "Marketing"))
		require.True(t, errors.Is(err, errs.ErrOutOfScope))
		require.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run(`supervisor assigns supervisor in own department`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleSupervisor, "Engineering", employee(models.RoleSupervisor, "Engineering"))
		require.True(t, errors.Is(err, errs.ErrRoleNotAssignable))
	})

	t.Run(`supervisor assigns employee in own department`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleSupervisor, "Engineering", employee(models.RoleEmployee, "Engineering"))
		require.Nil(t, err)
	})

	t.Run(`supervisor with All department`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleSupervisor, models.DepartmentAll, employee(models.RoleEmployee, "Marketing"))
		require.Nil(t, err)
	})

	t.Run(`gm assigns supervisor in own department`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleGm, "Engineering", employee(models.RoleSupervisor, "Engineering"))
		require.Nil(t, err)
	})

	t.Run(`gm assigns manager`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleGm, "Engineering", employee(models.RoleManager, "Engineering"))
		require.True(t, errors.Is(err, errs.ErrRoleNotAssignable))
	})

	t.Run(`gm out of department`, func(t *testing.T) {
		err := ValidateAssignee(models.RoleGm, "Engineering", employee(models.RoleEmployee, "Marketing"))
		require.True(t, errors.Is(err, errs.ErrOutOfScope))
	})

	t.Run(`candidate in literal All department`, func(t *testing.T) {
		// у кандидата "All" - обычный отдел, совпадение требуется буквальное
		err := ValidateAssignee(models.RoleSupervisor, "Engineering", employee(models.RoleEmployee, models.DepartmentAll))
		require.True(t, errors.Is(err, errs.ErrOutOfScope))
	})
}

func TestInScope(t *testing.T) {
	require.True(t, InScope(models.DepartmentAll, "Marketing"))
	require.True(t, InScope("Engineering", "Engineering"))
	require.False(t, InScope("Engineering", "Marketing"))
	require.True(t, InScope(models.DepartmentAll, models.DepartmentAll))
}

func TestAssignableRoles(t *testing.T) {
	require.Nil(t, AssignableRoles(models.RoleSystemAdmin))
	require.Equal(t, []models.UserRole{models.RoleSupervisor, models.RoleEmployee}, AssignableRoles(models.RoleGm))
	require.Equal(t, []models.UserRole{models.RoleEmployee}, AssignableRoles(models.RoleSupervisor))
	require.Empty(t, AssignableRoles(models.RoleHrAdmin))
	require.NotNil(t, AssignableRoles(models.RoleHrAdmin))
}
