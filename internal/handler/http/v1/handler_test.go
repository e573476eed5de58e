package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/crowdwatch/incident_lifecycle_system/internal/config"
	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/crowdwatch/incident_lifecycle_system/internal/service"
	"github.com/crowdwatch/incident_lifecycle_system/internal/service/mocks"
)

// newTestHandler создает новый экземпляр Handler с мокированным менеджером
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentManager, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockManager := mocks.NewMockIncidentManager(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:   []string{"test-api-key"},
		AckWindow: 30 * time.Second,
	}

	handler := NewHandler(mockManager, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockManager, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func sampleIncident(status models.IncidentStatus) *models.Incident {
	now := time.Now().UTC()
	return &models.Incident{
		ID:           uuid.New(),
		ReporterName: "Alice",
		Location:     "Gate 2",
		Details:      "Smoke reported",
		Source:       models.SourceUserReport,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestReportIncident_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	expected := sampleIncident(models.StatusPending)
	reqBody := ReportIncidentRequest{
		ReporterName: "Alice",
		Location:     "Gate 2",
		Details:      "Smoke reported",
	}

	mockManager.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CreateIncidentInput) (*models.Incident, error) {
			assert.Equal(t, models.SourceUserReport, input.Source)
			assert.Equal(t, "Alice", input.ReporterName)
			return expected, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	assert.Equal(t, string(models.StatusPending), resp.Status)
	// Pending-инцидент несет остаток окна подтверждения для отображения
	require.NotNil(t, resp.AckRemainingSeconds)
	assert.LessOrEqual(t, *resp.AckRemainingSeconds, int64(30))
	assert.GreaterOrEqual(t, *resp.AckRemainingSeconds, int64(25))
}

func TestReportIncident_InvalidJSON(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"reporter_name": "Alice"`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{ // Отсутствует ReporterName
		Location: "Gate 2",
		Details:  "Smoke reported",
	}

	mockManager.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportIncident_PersistenceDegraded(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	expected := sampleIncident(models.StatusPending)
	reqBody := ReportIncidentRequest{
		ReporterName: "Alice",
		Location:     "Gate 2",
		Details:      "Smoke reported",
	}

	// Память авторитетна: сбой персистентности не отменяет создание
	mockManager.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(expected, &service.PersistenceError{Op: "CreateIncident", Err: fmt.Errorf("storage unavailable")}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIngestAnomaly_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	expected := sampleIncident(models.StatusPending)
	expected.Source = models.SourceAutomatedDetection
	reqBody := AnomalyRequest{
		Type:       "crowd surge",
		Confidence: 0.87,
		Location:   "Sector A",
		Severity:   "high",
	}

	mockManager.EXPECT().
		ReportAnomaly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.AnomalyInput) (*models.Incident, error) {
			assert.Equal(t, "crowd surge", input.Type)
			assert.InDelta(t, 0.87, input.Confidence, 0.001)
			return expected, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/anomalies", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.SourceAutomatedDetection), resp.Source)
}

func TestIngestAnomaly_InvalidSeverity(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	reqBody := AnomalyRequest{
		Type:       "fire",
		Confidence: 0.9,
		Location:   "Gate 2",
		Severity:   "catastrophic",
	}

	mockManager.EXPECT().ReportAnomaly(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/anomalies", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcknowledgeIncident_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	expected := sampleIncident(models.StatusAcknowledged)

	mockManager.EXPECT().
		Acknowledge(gomock.Any(), expected.ID).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+expected.ID.String()+"/acknowledge", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.StatusAcknowledged), resp.Status)
	assert.Nil(t, resp.AckRemainingSeconds)
}

func TestAcknowledgeIncident_NotFound(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	id := uuid.New()

	mockManager.EXPECT().
		Acknowledge(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: incident %s: %w", id, service.ErrIncidentNotFound)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+id.String()+"/acknowledge", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestAcknowledgeIncident_InvalidID(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().Acknowledge(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents/not-a-uuid/acknowledge", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcknowledgeIncident_Rejected(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	current := sampleIncident(models.StatusEscalated)

	// Отклоненный переход - не крэш: состояние не изменилось
	mockManager.EXPECT().
		Acknowledge(gomock.Any(), current.ID).
		Return(current, fmt.Errorf("service: %s -> %s: %w", current.Status, models.StatusAcknowledged, service.ErrInvalidTransition)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+current.ID.String()+"/acknowledge", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "transition rejected")
	assert.Contains(t, w.Body.String(), "Escalated")
}

func TestArchiveIncident_Rejected(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	current := sampleIncident(models.StatusPending)

	mockManager.EXPECT().
		Archive(gomock.Any(), current.ID).
		Return(current, fmt.Errorf("service: %s -> %s: %w", current.Status, models.StatusArchived, service.ErrInvalidTransition)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+current.ID.String()+"/archive", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestArchiveIncident_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	expected := sampleIncident(models.StatusArchived)

	mockManager.EXPECT().
		Archive(gomock.Any(), expected.ID).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+expected.ID.String()+"/archive", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	incidents := []*models.Incident{
		sampleIncident(models.StatusPending),
		sampleIncident(models.StatusArchived),
	}

	mockManager.EXPECT().ListAll(gomock.Any()).Return(incidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
}

func TestListActiveIncidents_PendingCarriesRemainingWindow(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	pending := sampleIncident(models.StatusPending)
	pending.CreatedAt = time.Now().UTC().Add(-10 * time.Second)
	escalated := sampleIncident(models.StatusEscalated)

	mockManager.EXPECT().
		ListActive(gomock.Any()).
		Return([]*models.Incident{escalated, pending}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/active", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	// Остаток окна выводится из created_at: ~20 секунд из 30
	assert.Nil(t, resp[0].AckRemainingSeconds)
	require.NotNil(t, resp[1].AckRemainingSeconds)
	assert.LessOrEqual(t, *resp[1].AckRemainingSeconds, int64(20))
	assert.GreaterOrEqual(t, *resp[1].AckRemainingSeconds, int64(15))
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	id := uuid.New()

	mockManager.EXPECT().
		GetIncident(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: incident %s: %w", id, service.ErrIncidentNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+id.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuth_MissingAPIKey(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ListAll(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidAPIKey(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ListAll(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ListAll(gomock.Any()).Return([]*models.Incident{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
