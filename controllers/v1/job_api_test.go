package apiv1

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	jobhandler "worktrack-backend/lib/job"
	"worktrack-backend/models"
	jobapimodels "worktrack-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// stubJobHandler - заглушка движка задач, фиксирует принятое вложение
type stubJobHandler struct {
	fileName string
	file     []byte
}

func (s *stubJobHandler) Create(actor models.Actor, data jobapimodels.JobCreateData) (jobapimodels.JobView, error) {
	return jobapimodels.JobView{}, nil
}

func (s *stubJobHandler) GetByID(actor models.Actor, id string) (jobapimodels.JobView, error) {
	return jobapimodels.JobView{}, nil
}

func (s *stubJobHandler) List(actor models.Actor, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	return nil, 0, nil
}

func (s *stubJobHandler) Update(actor models.Actor, id string, data jobapimodels.JobEditData) error {
	return nil
}

func (s *stubJobHandler) ChangeStatus(actor models.Actor, id string, newStatus models.JobStatus) error {
	return nil
}

func (s *stubJobHandler) Assign(actor models.Actor, id string, data jobapimodels.JobAssignData) error {
	return nil
}

func (s *stubJobHandler) Delete(actor models.Actor, id string) error { return nil }

func (s *stubJobHandler) History(actor models.Actor, id string) ([]jobapimodels.JobHistoryView, error) {
	return nil, nil
}

func (s *stubJobHandler) EligibleAssignees(actor models.Actor) ([]jobapimodels.AssigneeView, error) {
	return nil, nil
}

func (s *stubJobHandler) Export(actor models.Actor, filter jobapimodels.JobFilter) (*bytes.Buffer, error) {
	return &bytes.Buffer{}, nil
}

func (s *stubJobHandler) UploadAttachment(ctx context.Context, actor models.Actor, jobID, fileName string, file []byte) (jobapimodels.AttachmentView, error) {
	s.fileName = fileName
	s.file = append([]byte{}, file...)
	return jobapimodels.AttachmentView{}, nil
}

func (s *stubJobHandler) ListAttachments(actor models.Actor, jobID string) ([]jobapimodels.AttachmentView, error) {
	return nil, nil
}

func (s *stubJobHandler) GetAttachment(ctx context.Context, actor models.Actor, jobID, attachmentID string) (string, []byte, error) {
	return "", nil, nil
}

func (s *stubJobHandler) ApplyApprovalDecision(jobID string, approved bool, actorName string, actorID *string) error {
	return nil
}

// Файл вложения должен сохраняться целиком независимо от того, как
// источник режет его на части при чтении.
func TestUploadAttachmentReadsWholeFile(t *testing.T) {
	stub := &stubJobHandler{}
	prev := jobhandler.Instance
	jobhandler.Instance = stub
	defer func() { jobhandler.Instance = prev }()

	app := fiber.New()
	InitJobApiRouters(app)

	payload := bytes.Repeat([]byte("attachment-data-"), 4096)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "report.pdf")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/job/job-1/attachment", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "report.pdf", stub.fileName)
	require.Equal(t, payload, stub.file)
}
