package jobhandler

import (
	"testing"
	jobstore "worktrack-backend/lib/job/store"
	"worktrack-backend/models"
	jobapimodels "worktrack-backend/models/api/job"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecideInitialStatus(t *testing.T) {
	cases := []struct {
		name        string
		role        models.UserRole
		autoApprove bool
		hasAssignee bool
		expected    models.JobStatus
		allowed     bool
	}{
		{"system_admin with assignee", models.RoleSystemAdmin, false, true, models.JobStatusPending, true},
		{"system_admin without assignee", models.RoleSystemAdmin, false, false, models.JobStatusDraft, true},
		{"system_admin autoApprove with assignee", models.RoleSystemAdmin, true, true, models.JobStatusPending, true},
		{"system_admin autoApprove without assignee", models.RoleSystemAdmin, true, false, models.JobStatusDraft, true},
		{"gm autoApprove with assignee", models.RoleGm, true, true, models.JobStatusPending, true},
		{"gm autoApprove without assignee", models.RoleGm, true, false, models.JobStatusDraft, true},
		{"gm without autoApprove with assignee", models.RoleGm, false, true, models.JobStatusPendingApproval, true},
		{"gm without autoApprove without assignee", models.RoleGm, false, false, models.JobStatusPendingApproval, true},
		{"supervisor with assignee", models.RoleSupervisor, false, true, models.JobStatusPendingApproval, true},
		{"supervisor without assignee", models.RoleSupervisor, false, false, models.JobStatusPendingApproval, true},
		{"supervisor autoApprove", models.RoleSupervisor, true, true, models.JobStatusPendingApproval, true},
		{"employee", models.RoleEmployee, true, true, "", false},
		{"manager", models.RoleManager, false, false, "", false},
		{"hr_admin", models.RoleHrAdmin, true, false, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, ok := decideInitialStatus(c.role, c.autoApprove, c.hasAssignee)
			require.Equal(t, c.allowed, ok)
			if c.allowed {
				require.Equal(t, c.expected, status)
			}
		})
	}
}

func TestCanAccessJob(t *testing.T) {
	employeeID := "emp-1"
	job := dbmodels.Job{
		Department: "Engineering",
		AssigneeID: &employeeID,
	}

	t.Run(`employee assigned to job`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleEmployee, "Engineering", "emp-1"))
	})

	t.Run(`employee not assigned`, func(t *testing.T) {
		require.False(t, canAccessJob(job, models.RoleEmployee, "Engineering", "emp-2"))
	})

	t.Run(`employee without employee reference`, func(t *testing.T) {
		require.False(t, canAccessJob(job, models.RoleEmployee, "Engineering", ""))
	})

	t.Run(`employee and job without assignee`, func(t *testing.T) {
		noAssignee := dbmodels.Job{Department: "Engineering"}
		require.False(t, canAccessJob(noAssignee, models.RoleEmployee, "Engineering", "emp-1"))
	})

	t.Run(`supervisor same department`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleSupervisor, "Engineering", ""))
	})

	t.Run(`supervisor other department`, func(t *testing.T) {
		require.False(t, canAccessJob(job, models.RoleSupervisor, "Marketing", ""))
	})

	t.Run(`supervisor with All department`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleSupervisor, models.DepartmentAll, ""))
	})

	t.Run(`gm other department`, func(t *testing.T) {
		require.False(t, canAccessJob(job, models.RoleGm, "Marketing", ""))
	})

	t.Run(`gm with All department`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleGm, models.DepartmentAll, ""))
	})

	t.Run(`hr_admin always`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleHrAdmin, "Marketing", ""))
	})

	t.Run(`manager always`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleManager, "Marketing", ""))
	})

	t.Run(`system_admin always`, func(t *testing.T) {
		require.True(t, canAccessJob(job, models.RoleSystemAdmin, "Marketing", ""))
	})
}

// fakeJobStore - статусы задач в памяти для проверки применения решений
type fakeJobStore struct {
	recs map[string]dbmodels.Job
}

func (f fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }

func (f fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.JobStatus)
	}
	f.recs[id] = rec
	return nil
}

func (f fakeJobStore) Delete(id string) error { return nil }

func (f fakeJobStore) List(filter jobapimodels.JobFilter, scope jobstore.ListScope) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f fakeJobStore) ListCount(filter jobapimodels.JobFilter, scope jobstore.ListScope) (int64, error) {
	return 0, nil
}

func (f fakeJobStore) ListForExport(filter jobapimodels.JobFilter, scope jobstore.ListScope) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f fakeJobStore) NextNumber() (string, error) { return "JOB001", nil }

type fakeHistoryStore struct {
	recs *[]dbmodels.JobHistory
}

func (f fakeHistoryStore) Create(rec dbmodels.JobHistory) error {
	*f.recs = append(*f.recs, rec)
	return nil
}

func (f fakeHistoryStore) ListByJob(jobID string) ([]dbmodels.JobHistory, error) {
	return *f.recs, nil
}

func TestApplyApprovalDecision(t *testing.T) {
	newHandler := func(recs map[string]dbmodels.Job) (impl, *[]dbmodels.JobHistory) {
		history := &[]dbmodels.JobHistory{}
		handler := impl{
			store:        fakeJobStore{recs: recs},
			historyStore: fakeHistoryStore{recs: history},
		}
		return handler, history
	}
	pendingApproval := func(id string) dbmodels.Job {
		rec := dbmodels.Job{
			Number: "JOB001",
			Title:  "Migrate billing",
			Status: models.JobStatusPendingApproval,
		}
		rec.ID = id
		return rec
	}
	actorID := "u-1"

	t.Run(`approve moves job to pending`, func(t *testing.T) {
		recs := map[string]dbmodels.Job{"job-1": pendingApproval("job-1")}
		handler, history := newHandler(recs)

		err := handler.ApplyApprovalDecision("job-1", true, "GM", &actorID)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusPending, recs["job-1"].Status)
		require.Len(t, *history, 1)
		require.Equal(t, "Approved", (*history)[0].Action)
		require.Equal(t, "GM", (*history)[0].Actor)
	})

	t.Run(`reject moves job to cancelled`, func(t *testing.T) {
		recs := map[string]dbmodels.Job{"job-1": pendingApproval("job-1")}
		handler, history := newHandler(recs)

		err := handler.ApplyApprovalDecision("job-1", false, "GM", &actorID)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusCancelled, recs["job-1"].Status)
		require.Len(t, *history, 1)
		require.Equal(t, "Rejected", (*history)[0].Action)
	})

	t.Run(`unknown job`, func(t *testing.T) {
		handler, _ := newHandler(map[string]dbmodels.Job{})
		err := handler.ApplyApprovalDecision("missing", true, "GM", &actorID)
		require.True(t, errors.Is(err, errs.ErrNotFound))
	})
}
