package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/middleware"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
)

type taskServiceMock struct {
	listed    dto.TaskListQuery
	created   dto.CreateTaskRequest
	createErr error
	completed []string
	userID    string
}

func (m *taskServiceMock) List(ctx context.Context, userID string, query dto.TaskListQuery) ([]models.Task, *models.Pagination, error) {
	m.userID = userID
	m.listed = query
	return []models.Task{{ID: "task-1", Name: "essay"}}, &models.Pagination{Page: 1, PageSize: 50, TotalCount: 1}, nil
}

func (m *taskServiceMock) Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (*models.Task, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.userID = userID
	m.created = req
	return &models.Task{ID: "task-1", UserID: userID, Name: req.Name}, nil
}

func (m *taskServiceMock) Update(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (*models.Task, error) {
	return &models.Task{ID: taskID, UserID: userID, Name: req.Name}, nil
}

func (m *taskServiceMock) Complete(ctx context.Context, userID, taskID string) error {
	m.completed = append(m.completed, taskID)
	return nil
}

func (m *taskServiceMock) Delete(ctx context.Context, userID, taskID string) error {
	return nil
}

func testContext(t *testing.T, method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	c.Request = req
	c.Set(middleware.ContextUserKey, "user-1")
	return c, w
}

func TestTaskHandlerList(t *testing.T) {
	mockSvc := &taskServiceMock{}
	h := NewTaskHandler(mockSvc)

	c, w := testContext(t, http.MethodGet, "/tasks?completed=false&category=school&page=2", nil)
	c.Request.URL.RawQuery = "completed=false&category=school&page=2"

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", mockSvc.userID)
	require.NotNil(t, mockSvc.listed.Completed)
	assert.False(t, *mockSvc.listed.Completed)
	assert.Equal(t, "school", mockSvc.listed.Category)
	assert.Equal(t, 2, mockSvc.listed.Page)
}

func TestTaskHandlerListRejectsBadCompletedFlag(t *testing.T) {
	h := NewTaskHandler(&taskServiceMock{})
	c, w := testContext(t, http.MethodGet, "/tasks", nil)
	c.Request.URL.RawQuery = "completed=maybe"

	h.List(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandlerCreate(t *testing.T) {
	mockSvc := &taskServiceMock{}
	h := NewTaskHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateTaskRequest{
		Name:         "Write essay",
		Priority:     "urgent-important",
		DeadlineDate: "2025-03-14",
	})
	c, w := testContext(t, http.MethodPost, "/tasks", payload)

	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Write essay", mockSvc.created.Name)
}

func TestTaskHandlerCreateBadJSON(t *testing.T) {
	h := NewTaskHandler(&taskServiceMock{})
	c, w := testContext(t, http.MethodPost, "/tasks", []byte(`{"name":`))

	h.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandlerCreateServiceError(t *testing.T) {
	mockSvc := &taskServiceMock{createErr: appErrors.Clone(appErrors.ErrValidation, "invalid task payload")}
	h := NewTaskHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateTaskRequest{Name: "x"})
	c, w := testContext(t, http.MethodPost, "/tasks", payload)

	h.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var envelope struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestTaskHandlerComplete(t *testing.T) {
	mockSvc := &taskServiceMock{}
	h := NewTaskHandler(mockSvc)

	c, w := testContext(t, http.MethodPost, "/tasks/task-9/complete", nil)
	c.Params = gin.Params{{Key: "id", Value: "task-9"}}

	h.Complete(c)
	// gin.CreateTestContext defers c.Status until the engine flushes it;
	// flush manually since the handler is invoked directly.
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"task-9"}, mockSvc.completed)
}
