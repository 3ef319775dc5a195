package approvalhandler

import (
	"testing"
	"time"
	"worktrack-backend/models"
	approvalapimodels "worktrack-backend/models/api/approval"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeStore - проверка защитных условий до транзакции
type fakeStore struct {
	recs map[string]dbmodels.Approval
}

func (f fakeStore) Create(rec dbmodels.Approval) (string, error) { return rec.ID, nil }

func (f fakeStore) GetByID(id string) (*dbmodels.Approval, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeStore) Resolve(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok || rec.Status != models.ApprovalStatusPending {
		return errs.ErrAlreadyProcessed
	}
	rec.Status = updMap["status"].(models.ApprovalStatus)
	f.recs[id] = rec
	return nil
}

func (f fakeStore) List(filter approvalapimodels.ApprovalFilter) ([]dbmodels.Approval, error) {
	return nil, nil
}

func (f fakeStore) ListCount(filter approvalapimodels.ApprovalFilter) (int64, error) {
	return 0, nil
}

func newTestHandler(recs map[string]dbmodels.Approval) impl {
	return impl{store: fakeStore{recs: recs}}
}

func approval(id string, status models.ApprovalStatus) dbmodels.Approval {
	rec := dbmodels.Approval{
		Type:        models.ApprovalTypeJobCreation,
		Requester:   "Test Requester",
		Status:      status,
		SubmittedAt: time.Now(),
	}
	rec.ID = id
	return rec
}

func TestResolveGuards(t *testing.T) {
	handler := newTestHandler(map[string]dbmodels.Approval{
		"pending-1":  approval("pending-1", models.ApprovalStatusPending),
		"approved-1": approval("approved-1", models.ApprovalStatusApproved),
		"rejected-1": approval("rejected-1", models.ApprovalStatusRejected),
	})
	gm := models.Actor{UserID: "u-1", Name: "GM", Role: models.RoleGm}
	hrAdmin := models.Actor{UserID: "u-2", Name: "HR", Role: models.RoleHrAdmin}

	t.Run(`hr_admin is view only`, func(t *testing.T) {
		_, err := handler.Approve(hrAdmin, "pending-1", approvalapimodels.DecisionData{})
		require.True(t, errors.Is(err, errs.ErrForbidden))

		_, err = handler.Reject(hrAdmin, "pending-1", approvalapimodels.DecisionData{})
		require.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run(`unknown approval`, func(t *testing.T) {
		_, err := handler.Approve(gm, "missing", approvalapimodels.DecisionData{})
		require.True(t, errors.Is(err, errs.ErrNotFound))
	})

	t.Run(`already approved`, func(t *testing.T) {
		_, err := handler.Approve(gm, "approved-1", approvalapimodels.DecisionData{})
		require.True(t, errors.Is(err, errs.ErrAlreadyProcessed))
	})

	t.Run(`already rejected`, func(t *testing.T) {
		_, err := handler.Reject(gm, "rejected-1", approvalapimodels.DecisionData{})
		require.True(t, errors.Is(err, errs.ErrAlreadyProcessed))
	})
}

type fakeDecisionApplier struct {
	calls int
}

func (f *fakeDecisionApplier) ApplyApprovalDecision(jobID string, approved bool, actorName string, actorID *string) error {
	f.calls++
	return nil
}

// Два обработчика прочитали запись в статусе pending до того, как один из
// них записал решение. Зафиксироваться должно ровно одно, задача меняется
// однократно.
func TestFinalizeIsOneShot(t *testing.T) {
	jobID := "job-1"
	rec := approval("pending-1", models.ApprovalStatusPending)
	rec.JobID = &jobID
	store := fakeStore{recs: map[string]dbmodels.Approval{"pending-1": rec}}
	handler := impl{store: store}
	jobs := &fakeDecisionApplier{}
	gm := models.Actor{UserID: "u-1", Name: "GM", Role: models.RoleGm}

	err := handler.finalize(store, jobs, gm, rec, models.ApprovalStatusApproved, "")
	require.NoError(t, err)

	err = handler.finalize(store, jobs, gm, rec, models.ApprovalStatusRejected, "")
	require.True(t, errors.Is(err, errs.ErrAlreadyProcessed))

	require.Equal(t, 1, jobs.calls)
	require.Equal(t, models.ApprovalStatusApproved, store.recs["pending-1"].Status)
}
