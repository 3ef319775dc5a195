package jobhandler

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"worktrack-backend/db"
	approvalstore "worktrack-backend/lib/approval/store"
	employeestore "worktrack-backend/lib/employee/store"
	xlsexport "worktrack-backend/lib/export/xls"
	filestorage "worktrack-backend/lib/file-storage"
	jobattachmentstore "worktrack-backend/lib/job/attachment-store"
	jobhistorystore "worktrack-backend/lib/job/history-store"
	jobstore "worktrack-backend/lib/job/store"
	notificationhandler "worktrack-backend/lib/notification"
	"worktrack-backend/lib/scope"
	usersstore "worktrack-backend/lib/users/store"
	"worktrack-backend/models"
	jobapimodels "worktrack-backend/models/api/job"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Provider interface {
	Create(actor models.Actor, data jobapimodels.JobCreateData) (jobapimodels.JobView, error)
	GetByID(actor models.Actor, id string) (jobapimodels.JobView, error)
	List(actor models.Actor, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error)
	Update(actor models.Actor, id string, data jobapimodels.JobEditData) error
	ChangeStatus(actor models.Actor, id string, newStatus models.JobStatus) error
	Assign(actor models.Actor, id string, data jobapimodels.JobAssignData) error
	Delete(actor models.Actor, id string) error
	History(actor models.Actor, id string) ([]jobapimodels.JobHistoryView, error)
	EligibleAssignees(actor models.Actor) ([]jobapimodels.AssigneeView, error)
	Export(actor models.Actor, filter jobapimodels.JobFilter) (*bytes.Buffer, error)
	UploadAttachment(ctx context.Context, actor models.Actor, jobID, fileName string, file []byte) (jobapimodels.AttachmentView, error)
	ListAttachments(actor models.Actor, jobID string) ([]jobapimodels.AttachmentView, error)
	GetAttachment(ctx context.Context, actor models.Actor, jobID, attachmentID string) (fileName string, file []byte, err error)
	// ApplyApprovalDecision вызывается движком согласований в его транзакции
	ApplyApprovalDecision(jobID string, approved bool, actorName string, actorID *string) error
}

var Instance Provider

func NewHandler() {
	Instance = newImpl(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return newImpl(tx)
}

func newImpl(tx *gorm.DB) impl {
	return impl{
		store:           jobstore.NewInstance(tx),
		historyStore:    jobhistorystore.NewInstance(tx),
		approvalStore:   approvalstore.NewInstance(tx),
		attachmentStore: jobattachmentstore.NewInstance(tx),
		employeeStore:   employeestore.NewInstance(tx),
		usersStore:      usersstore.NewInstance(tx),
	}
}

type impl struct {
	store           jobstore.Provider
	historyStore    jobhistorystore.Provider
	approvalStore   approvalstore.Provider
	attachmentStore jobattachmentstore.Provider
	employeeStore   employeestore.Provider
	usersStore      usersstore.Provider
}

type creationKey struct {
	role        models.UserRole
	autoApprove bool
	hasAssignee bool
}

// initialStatusTable - статус новой задачи по роли создателя, флагу
// автосогласования и наличию исполнителя. Отсутствие строки означает
// запрет на создание.
var initialStatusTable = map[creationKey]models.JobStatus{
	{models.RoleSystemAdmin, true, true}:   models.JobStatusPending,
	{models.RoleSystemAdmin, true, false}:  models.JobStatusDraft,
	{models.RoleSystemAdmin, false, true}:  models.JobStatusPending,
	{models.RoleSystemAdmin, false, false}: models.JobStatusDraft,
	{models.RoleGm, true, true}:            models.JobStatusPending,
	{models.RoleGm, true, false}:           models.JobStatusDraft,
	{models.RoleGm, false, true}:           models.JobStatusPendingApproval,
	{models.RoleGm, false, false}:          models.JobStatusPendingApproval,
	{models.RoleSupervisor, true, true}:    models.JobStatusPendingApproval,
	{models.RoleSupervisor, true, false}:   models.JobStatusPendingApproval,
	{models.RoleSupervisor, false, true}:   models.JobStatusPendingApproval,
	{models.RoleSupervisor, false, false}:  models.JobStatusPendingApproval,
}

func decideInitialStatus(role models.UserRole, autoApprove, hasAssignee bool) (models.JobStatus, bool) {
	status, ok := initialStatusTable[creationKey{role, autoApprove, hasAssignee}]
	return status, ok
}

// canAccessJob - доступ к задаче на чтение/изменение/назначение/удаление.
// Проверяется после проверки существования записи.
func canAccessJob(job dbmodels.Job, role models.UserRole, department, employeeID string) bool {
	switch role {
	case models.RoleEmployee:
		return employeeID != "" && job.AssigneeID != nil && *job.AssigneeID == employeeID
	case models.RoleSupervisor, models.RoleGm:
		return scope.InScope(department, job.Department)
	}
	return true
}

func (i impl) Create(actor models.Actor, data jobapimodels.JobCreateData) (jobapimodels.JobView, error) {
	if !actor.GetRole().CanCreateJobs() {
		return jobapimodels.JobView{}, errs.Forbiddenf("роль %v не может создавать задачи", actor.GetRole())
	}
	err := data.Validate()
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	var assignee *dbmodels.Employee
	if data.AssigneeID != "" {
		assignee, err = i.employeeStore.GetByID(data.AssigneeID)
		if err != nil {
			return jobapimodels.JobView{}, err
		}
		if assignee == nil {
			return jobapimodels.JobView{}, errs.Validationf("исполнитель не найден: %v", data.AssigneeID)
		}
		err = scope.ValidateAssignee(actor.GetRole(), actor.Department, *assignee)
		if err != nil {
			return jobapimodels.JobView{}, err
		}
	}
	status, ok := decideInitialStatus(actor.GetRole(), data.AutoApprove, assignee != nil)
	if !ok {
		return jobapimodels.JobView{}, errs.Forbiddenf("роль %v не может создавать задачи", actor.GetRole())
	}
	rec := dbmodels.Job{
		Title:       data.Title,
		Description: data.Description,
		Department:  data.Department,
		Status:      status,
		Priority:    data.GetPriority(),
		DueDate:     data.GetDueDate(),
		Tags:        data.Tags,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		rec.CreatedByID = &userID
	}
	if assignee != nil {
		rec.AssigneeID = &assignee.ID
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txHandler := newImpl(tx)
		number, err := txHandler.store.NextNumber()
		if err != nil {
			return err
		}
		rec.Number = number
		recID, err := txHandler.store.Create(rec)
		if err != nil {
			return err
		}
		rec.ID = recID
		details := ""
		if status == models.JobStatusPendingApproval {
			details = "создана, ожидает согласования"
			err = txHandler.createApproval(actor, rec)
			if err != nil {
				return err
			}
		}
		return txHandler.record(rec.ID, "Created", actor, details)
	})
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	rec.Assignee = assignee
	if assignee != nil && assignee.UserID != nil {
		notificationhandler.Instance.Notify(*assignee.UserID, models.NotificationJobAssigned,
			fmt.Sprintf("Вам назначена задача %v \"%v\"", rec.Number, rec.Title))
	}
	if status == models.JobStatusPendingApproval {
		i.notifyApprovers(actor, rec)
	}
	return jobapimodels.JobConvert(rec), nil
}

// notifyApprovers - уведомление принимающих решение о новой заявке
func (i impl) notifyApprovers(actor models.Actor, job dbmodels.Job) {
	approvers, err := i.usersStore.ListApprovers(job.Department)
	if err != nil {
		return
	}
	msg := fmt.Sprintf("Новая заявка на согласование задачи %v \"%v\" от %v", job.Number, job.Title, actor.Name)
	for _, approver := range approvers {
		if approver.ID == actor.UserID {
			continue
		}
		notificationhandler.Instance.Notify(approver.ID, models.NotificationApprovalRequest, msg)
	}
}

// createApproval - заявка на согласование создаётся в одной транзакции с задачей
func (i impl) createApproval(actor models.Actor, job dbmodels.Job) error {
	description := job.Description
	if description == "" {
		description = fmt.Sprintf("Job: %v", job.Title)
	}
	jobID := job.ID
	approval := dbmodels.Approval{
		Type:        models.ApprovalTypeJobCreation,
		Requester:   actor.Name,
		Department:  job.Department,
		Status:      models.ApprovalStatusPending,
		SubmittedAt: time.Now(),
		Description: description,
		JobID:       &jobID,
		JobTitle:    job.Title,
		JobDueDate:  job.DueDate,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		approval.RequesterID = &userID
	}
	_, err := i.approvalStore.Create(approval)
	return err
}

func (i impl) GetByID(actor models.Actor, id string) (jobapimodels.JobView, error) {
	rec, err := i.getWithAccess(actor, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(*rec), nil
}

// getWithAccess - проверка существования всегда раньше проверки доступа
func (i impl) getWithAccess(actor models.Actor, id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NotFoundf("задача не найдена: %v", id)
	}
	if !canAccessJob(*rec, actor.GetRole(), actor.Department, actor.EmployeeID) {
		return nil, errs.Forbiddenf("задача недоступна: %v", id)
	}
	return rec, nil
}

func (i impl) List(actor models.Actor, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	listScope := i.resolveScope(actor, filter)
	if listScope == nil {
		return []jobapimodels.JobView{}, 0, nil
	}
	list, err := i.store.List(filter, *listScope)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.store.ListCount(filter, *listScope)
	if err != nil {
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, count, nil
}

// resolveScope - границы видимости списка по роли актора.
// nil означает заведомо пустой результат.
func (i impl) resolveScope(actor models.Actor, filter jobapimodels.JobFilter) *jobstore.ListScope {
	listScope := jobstore.ListScope{}
	switch filter.View {
	case "my_jobs":
		if actor.EmployeeID == "" {
			return nil
		}
		listScope.AssigneeID = actor.EmployeeID
	case "assigned_jobs":
		listScope.CreatedByID = actor.UserID
	}
	switch actor.GetRole() {
	case models.RoleEmployee:
		if actor.EmployeeID == "" {
			return nil
		}
		listScope.AssigneeID = actor.EmployeeID
	case models.RoleSupervisor, models.RoleGm:
		if !models.Department(actor.Department).IsWildcard() {
			listScope.Department = actor.Department
		}
	}
	return &listScope
}

func (i impl) Update(actor models.Actor, id string, data jobapimodels.JobEditData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	_, err = i.getWithAccess(actor, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if data.Title != nil {
		updMap["title"] = *data.Title
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.Department != nil {
		updMap["department"] = *data.Department
	}
	if data.Priority != nil {
		updMap["priority"] = *data.Priority
	}
	if data.DueDate != nil {
		updMap["due_date"] = data.GetDueDate()
	}
	if data.Progress != nil {
		updMap["progress"] = *data.Progress
	}
	if data.Tags != nil {
		updMap["tags"] = pq.StringArray(data.Tags)
	}
	return i.store.Update(id, updMap)
}

func (i impl) ChangeStatus(actor models.Actor, id string, newStatus models.JobStatus) error {
	rec, err := i.getWithAccess(actor, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(newStatus) {
		return errs.Validationf("смена статуса недоступна: %v -> %v", rec.Status, newStatus)
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txHandler := newImpl(tx)
		err := txHandler.store.Update(id, map[string]interface{}{"status": newStatus})
		if err != nil {
			return err
		}
		details := fmt.Sprintf("%v -> %v", rec.Status.ToHuman(), newStatus.ToHuman())
		return txHandler.record(id, "Status changed", actor, details)
	})
	if err != nil {
		return err
	}
	i.notifyAssignee(*rec, models.NotificationJobStatusChanged,
		fmt.Sprintf("Статус задачи %v изменён: %v", rec.Number, newStatus.ToHuman()))
	return nil
}

func (i impl) Assign(actor models.Actor, id string, data jobapimodels.JobAssignData) error {
	rec, err := i.getWithAccess(actor, id)
	if err != nil {
		return err
	}
	var assignee *dbmodels.Employee
	if data.AssigneeID != "" {
		assignee, err = i.employeeStore.GetByID(data.AssigneeID)
		if err != nil {
			return err
		}
		if assignee == nil {
			return errs.Validationf("исполнитель не найден: %v", data.AssigneeID)
		}
		err = scope.ValidateAssignee(actor.GetRole(), actor.Department, *assignee)
		if err != nil {
			return err
		}
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txHandler := newImpl(tx)
		action := "Assigned"
		details := ""
		var assigneeID interface{}
		if assignee != nil {
			assigneeID = assignee.ID
			details = assignee.Name
		} else {
			assigneeID = nil
			action = "Assignee removed"
		}
		err := txHandler.store.Update(id, map[string]interface{}{"assignee_id": assigneeID})
		if err != nil {
			return err
		}
		return txHandler.record(id, action, actor, details)
	})
	if err != nil {
		return err
	}
	if assignee != nil && assignee.UserID != nil {
		notificationhandler.Instance.Notify(*assignee.UserID, models.NotificationJobAssigned,
			fmt.Sprintf("Вам назначена задача %v \"%v\"", rec.Number, rec.Title))
	}
	return nil
}

func (i impl) Delete(actor models.Actor, id string) error {
	if !actor.GetRole().CanDeleteJobs() {
		return errs.Forbiddenf("роль %v не может удалять задачи", actor.GetRole())
	}
	_, err := i.getWithAccess(actor, id)
	if err != nil {
		return err
	}
	// история, согласования и вложения удаляются каскадно хуком модели
	return i.store.Delete(id)
}

func (i impl) History(actor models.Actor, id string) ([]jobapimodels.JobHistoryView, error) {
	_, err := i.getWithAccess(actor, id)
	if err != nil {
		return nil, err
	}
	list, err := i.historyStore.ListByJob(id)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobHistoryConvert(rec))
	}
	return result, nil
}

func (i impl) EligibleAssignees(actor models.Actor) ([]jobapimodels.AssigneeView, error) {
	allowedRoles := scope.AssignableRoles(actor.GetRole())
	if allowedRoles != nil && len(allowedRoles) == 0 {
		return []jobapimodels.AssigneeView{}, nil
	}
	department := ""
	if actor.GetRole().IsDeptScoped() {
		department = actor.Department
	}
	list, err := i.employeeStore.ListActive(department)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.AssigneeView, 0, len(list))
	for _, rec := range list {
		if scope.ValidateAssignee(actor.GetRole(), actor.Department, rec) != nil {
			continue
		}
		result = append(result, jobapimodels.AssigneeView{
			ID:    rec.ID,
			Name:  rec.Name,
			Email: rec.Email,
		})
	}
	return result, nil
}

func (i impl) Export(actor models.Actor, filter jobapimodels.JobFilter) (*bytes.Buffer, error) {
	listScope := i.resolveScope(actor, filter)
	if listScope == nil {
		return xlsexport.Instance.ExportJobList(nil)
	}
	list, err := i.store.ListForExport(filter, *listScope)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportJobList(list)
}

func (i impl) UploadAttachment(ctx context.Context, actor models.Actor, jobID, fileName string, file []byte) (jobapimodels.AttachmentView, error) {
	_, err := i.getWithAccess(actor, jobID)
	if err != nil {
		return jobapimodels.AttachmentView{}, err
	}
	if fileName == "" || len(file) == 0 {
		return jobapimodels.AttachmentView{}, errs.Validationf("пустой файл вложения")
	}
	objectKey := uuid.NewString()
	err = filestorage.Instance.UploadFile(ctx, objectKey, file)
	if err != nil {
		return jobapimodels.AttachmentView{}, err
	}
	rec := dbmodels.JobAttachment{
		JobID:      jobID,
		FileName:   fileName,
		ObjectKey:  objectKey,
		Size:       int64(len(file)),
		UploadedBy: actor.Name,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		rec.UploadedByID = &userID
	}
	recID, err := i.attachmentStore.Create(rec)
	if err != nil {
		return jobapimodels.AttachmentView{}, err
	}
	rec.ID = recID
	return jobapimodels.AttachmentConvert(rec), nil
}

func (i impl) ListAttachments(actor models.Actor, jobID string) ([]jobapimodels.AttachmentView, error) {
	_, err := i.getWithAccess(actor, jobID)
	if err != nil {
		return nil, err
	}
	list, err := i.attachmentStore.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.AttachmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.AttachmentConvert(rec))
	}
	return result, nil
}

func (i impl) GetAttachment(ctx context.Context, actor models.Actor, jobID, attachmentID string) (string, []byte, error) {
	_, err := i.getWithAccess(actor, jobID)
	if err != nil {
		return "", nil, err
	}
	rec, err := i.attachmentStore.GetByID(jobID, attachmentID)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errs.NotFoundf("вложение не найдено: %v", attachmentID)
	}
	file, err := filestorage.Instance.GetFile(ctx, rec.ObjectKey)
	if err != nil {
		return "", nil, err
	}
	return rec.FileName, file, nil
}

// ApplyApprovalDecision переводит задачу по решению согласования
// "Job Creation": одобрение в pending, отклонение в cancelled.
// Вызывается в транзакции движка согласований.
func (i impl) ApplyApprovalDecision(jobID string, approved bool, actorName string, actorID *string) error {
	rec, err := i.store.GetByID(jobID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFoundf("задача не найдена: %v", jobID)
	}
	newStatus := models.JobStatusPending
	action := "Approved"
	if !approved {
		newStatus = models.JobStatusCancelled
		action = "Rejected"
	}
	err = i.store.Update(jobID, map[string]interface{}{"status": newStatus})
	if err != nil {
		return err
	}
	historyRec := dbmodels.JobHistory{
		JobID:   jobID,
		Action:  action,
		Actor:   actorName,
		ActorID: actorID,
		Details: fmt.Sprintf("%v -> %v", rec.Status.ToHuman(), newStatus.ToHuman()),
	}
	return i.historyStore.Create(historyRec)
}

func (i impl) record(jobID, action string, actor models.Actor, details string) error {
	rec := dbmodels.JobHistory{
		JobID:   jobID,
		Action:  action,
		Actor:   actor.Name,
		Details: details,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		rec.ActorID = &userID
	}
	return i.historyStore.Create(rec)
}

func (i impl) notifyAssignee(job dbmodels.Job, code models.NotificationCode, msg string) {
	if job.Assignee == nil || job.Assignee.UserID == nil {
		return
	}
	notificationhandler.Instance.Notify(*job.Assignee.UserID, code, msg)
}
