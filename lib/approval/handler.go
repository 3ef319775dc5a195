package approvalhandler

import (
	"fmt"
	"time"
	"worktrack-backend/db"
	approvalstore "worktrack-backend/lib/approval/store"
	jobhandler "worktrack-backend/lib/job"
	notificationhandler "worktrack-backend/lib/notification"
	"worktrack-backend/models"
	approvalapimodels "worktrack-backend/models/api/approval"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"gorm.io/gorm"
)

type Provider interface {
	List(actor models.Actor, filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, int64, error)
	GetByID(actor models.Actor, id string) (approvalapimodels.ApprovalView, error)
	Approve(actor models.Actor, id string, data approvalapimodels.DecisionData) (approvalapimodels.DecisionView, error)
	Reject(actor models.Actor, id string, data approvalapimodels.DecisionData) (approvalapimodels.DecisionView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: approvalstore.NewInstance(db.DB),
	}
}

type impl struct {
	store approvalstore.Provider
}

func (i impl) List(actor models.Actor, filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, int64, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]approvalapimodels.ApprovalView, 0, len(list))
	for _, rec := range list {
		result = append(result, approvalapimodels.ApprovalConvert(rec))
	}
	return result, count, nil
}

func (i impl) GetByID(actor models.Actor, id string) (approvalapimodels.ApprovalView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return approvalapimodels.ApprovalView{}, err
	}
	if rec == nil {
		return approvalapimodels.ApprovalView{}, errs.NotFoundf("согласование не найдено: %v", id)
	}
	return approvalapimodels.ApprovalConvert(*rec), nil
}

func (i impl) Approve(actor models.Actor, id string, data approvalapimodels.DecisionData) (approvalapimodels.DecisionView, error) {
	return i.resolve(actor, id, models.ApprovalStatusApproved, data.Comment)
}

func (i impl) Reject(actor models.Actor, id string, data approvalapimodels.DecisionData) (approvalapimodels.DecisionView, error) {
	return i.resolve(actor, id, models.ApprovalStatusRejected, data.Reason)
}

// resolve - однократный перевод согласования в терминальный статус.
// Смена статуса связанной задачи выполняется в одной транзакции с решением.
func (i impl) resolve(actor models.Actor, id string, newStatus models.ApprovalStatus, remark string) (approvalapimodels.DecisionView, error) {
	// для hr_admin согласования доступны только на просмотр
	if actor.GetRole() == models.RoleHrAdmin {
		return approvalapimodels.DecisionView{}, errs.Forbiddenf("роль %v не может обрабатывать согласования", actor.GetRole())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return approvalapimodels.DecisionView{}, err
	}
	if rec == nil {
		return approvalapimodels.DecisionView{}, errs.NotFoundf("согласование не найдено: %v", id)
	}
	if rec.Status.IsFinal() {
		return approvalapimodels.DecisionView{}, errs.ErrAlreadyProcessed
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.finalize(approvalstore.NewInstance(tx), jobhandler.NewHandlerWithTx(tx), actor, *rec, newStatus, remark)
	})
	if err != nil {
		return approvalapimodels.DecisionView{}, err
	}
	i.notifyRequester(*rec, newStatus)
	return approvalapimodels.DecisionView{
		ID:     id,
		Status: newStatus,
	}, nil
}

// jobDecisionApplier - движок задач в части применения решения согласования
type jobDecisionApplier interface {
	ApplyApprovalDecision(jobID string, approved bool, actorName string, actorID *string) error
}

// finalize записывает решение и переводит связанную задачу в одной
// транзакции. Условное обновление статуса в Resolve защищает от
// повторного решения, прошедшего предварительные проверки параллельно.
func (i impl) finalize(txStore approvalstore.Provider, jobs jobDecisionApplier, actor models.Actor, rec dbmodels.Approval, newStatus models.ApprovalStatus, remark string) error {
	err := txStore.Resolve(rec.ID, map[string]interface{}{
		"status":      newStatus,
		"resolved_by": actor.Name,
		"resolved_at": time.Now(),
		"remark":      remark,
	})
	if err != nil {
		return err
	}
	if rec.Type == models.ApprovalTypeJobCreation && rec.JobID != nil {
		approved := newStatus == models.ApprovalStatusApproved
		var actorID *string
		if actor.UserID != "" {
			userID := actor.UserID
			actorID = &userID
		}
		return jobs.ApplyApprovalDecision(*rec.JobID, approved, actor.Name, actorID)
	}
	return nil
}

func (i impl) notifyRequester(rec dbmodels.Approval, newStatus models.ApprovalStatus) {
	if rec.RequesterID == nil {
		return
	}
	decision := "согласована"
	if newStatus == models.ApprovalStatusRejected {
		decision = "отклонена"
	}
	notificationhandler.Instance.Notify(*rec.RequesterID, models.NotificationApprovalResolved,
		fmt.Sprintf("Заявка \"%v\" %v", rec.JobTitle, decision))
}
