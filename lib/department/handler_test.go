package departmenthandler

import (
	"testing"
	departmentapimodels "worktrack-backend/models/api/department"
	employeeapimodels "worktrack-backend/models/api/employee"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	recs map[string]dbmodels.Department
}

func (f fakeStore) Create(rec dbmodels.Department) (string, error) { return "dep-new", nil }

func (f fakeStore) GetByID(id string) (*dbmodels.Department, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeStore) FindByName(name string) (*dbmodels.Department, error) {
	for _, rec := range f.recs {
		if rec.Name == name {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeStore) Delete(id string) error { return nil }

func (f fakeStore) List() ([]dbmodels.Department, error) { return nil, nil }

type fakeEmployeeStore struct{}

func (f fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error)     { return rec.ID, nil }
func (f fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error)    { return nil, nil }
func (f fakeEmployeeStore) Update(id string, u map[string]interface{}) error { return nil }
func (f fakeEmployeeStore) Delete(id string) error                           { return nil }

func (f fakeEmployeeStore) List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f fakeEmployeeStore) ListCount(filter employeeapimodels.EmployeeFilter) (int64, error) {
	return 0, nil
}

func (f fakeEmployeeStore) ListActive(department string) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f fakeEmployeeStore) CountByDepartment(department string) (int64, error) { return 0, nil }

func (f fakeEmployeeStore) NextNumber() (string, error) { return "EMP001", nil }

func newTestHandler(recs map[string]dbmodels.Department) impl {
	return impl{
		store:         fakeStore{recs: recs},
		employeeStore: fakeEmployeeStore{},
	}
}

func department(id, name string, isDefault bool) dbmodels.Department {
	rec := dbmodels.Department{
		Name:      name,
		IsDefault: isDefault,
	}
	rec.ID = id
	return rec
}

func TestDefaultDepartmentIsProtected(t *testing.T) {
	handler := newTestHandler(map[string]dbmodels.Department{
		"dep-all": department("dep-all", "All", true),
		"dep-1":   department("dep-1", "Engineering", false),
	})

	t.Run(`default cannot be deleted`, func(t *testing.T) {
		err := handler.Delete("dep-all")
		require.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run(`default cannot be renamed`, func(t *testing.T) {
		err := handler.Update("dep-all", departmentapimodels.DepartmentData{Name: "Everyone"})
		require.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run(`default accepts non-name updates`, func(t *testing.T) {
		err := handler.Update("dep-all", departmentapimodels.DepartmentData{Name: "All", Head: "CEO"})
		require.NoError(t, err)
	})

	t.Run(`regular department can be deleted`, func(t *testing.T) {
		require.NoError(t, handler.Delete("dep-1"))
	})
}

func TestDepartmentNameIsUnique(t *testing.T) {
	handler := newTestHandler(map[string]dbmodels.Department{
		"dep-1": department("dep-1", "Engineering", false),
		"dep-2": department("dep-2", "Marketing", false),
	})

	t.Run(`duplicate on create`, func(t *testing.T) {
		_, err := handler.Create(departmentapimodels.DepartmentData{Name: "Engineering"})
		require.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run(`duplicate on rename`, func(t *testing.T) {
		err := handler.Update("dep-2", departmentapimodels.DepartmentData{Name: "Engineering"})
		require.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run(`unknown department`, func(t *testing.T) {
		err := handler.Update("missing", departmentapimodels.DepartmentData{Name: "Sales"})
		require.True(t, errors.Is(err, errs.ErrNotFound))
	})
}
