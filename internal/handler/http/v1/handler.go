package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/crowdwatch/incident_lifecycle_system/internal/config"
	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/crowdwatch/incident_lifecycle_system/internal/service"
)

type Handler struct {
	manager  service.IncidentManager
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(manager service.IncidentManager, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		manager:  manager,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Report a new incident
// @Description Create a new incident from a user-submitted report form. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.manager.CreateIncident(c.Request.Context(), service.CreateIncidentInput{
		ReporterName: input.ReporterName,
		Location:     input.Location,
		Details:      input.Details,
		Source:       models.SourceUserReport,
	})
	if h.respondCreateError(c, log, incident, err) {
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary Ingest a detected anomaly
// @Description Create a new incident from an AI anomaly detection tuple. Requires API key.
// @Tags Anomalies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param anomaly body AnomalyRequest true "Detected anomaly"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /anomalies [post]
func (h *Handler) ingestAnomaly(c *gin.Context) {
	var input AnomalyRequest
	log := h.logger.WithField("method", "ingestAnomaly")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.manager.ReportAnomaly(c.Request.Context(), service.AnomalyInput{
		Type:       input.Type,
		Confidence: input.Confidence,
		Location:   input.Location,
		Severity:   input.Severity,
	})
	if h.respondCreateError(c, log, incident, err) {
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary Acknowledge an incident
// @Description Transition a Pending incident to Acknowledged and cancel its escalation timer. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Transition rejected"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/acknowledge [post]
func (h *Handler) acknowledgeIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeIncident").WithField("id", id)

	incident, err := h.manager.Acknowledge(c.Request.Context(), id)
	if h.respondTransitionError(c, log, incident, err) {
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary Archive an incident
// @Description Transition an Acknowledged or Escalated incident to the terminal Archived status. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Transition rejected"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/archive [post]
func (h *Handler) archiveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "archiveIncident").WithField("id", id)

	incident, err := h.manager.Archive(c.Request.Context(), id)
	if h.respondTransitionError(c, log, incident, err) {
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary List all incidents
// @Description Get every incident regardless of status, newest first. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.manager.ListAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary List active incidents
// @Description Get incidents whose status is not Archived, newest first. Pending items carry the remaining acknowledgment window. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/active [get]
func (h *Handler) listActiveIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveIncidents")

	incidents, err := h.manager.ListActive(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.manager.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident, h.cfg.AckWindow, time.Now().UTC()))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondCreateError разбирает ошибку создания. Сбой персистентности не
// отменяет создание: инцидент уже в памяти, отвечаем успехом и логируем.
func (h *Handler) respondCreateError(c *gin.Context, log *logrus.Entry, incident *models.Incident, err error) bool {
	if err == nil {
		return false
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		log.WithError(err).Warn("Incident creation rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return true
	}

	var persistenceErr *service.PersistenceError
	if errors.As(err, &persistenceErr) && incident != nil {
		log.WithError(err).Warn("Incident created but persistence degraded")
		return false
	}

	log.WithError(err).Error("Failed to create incident in service")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	return true
}

// respondTransitionError отображает результат перехода в HTTP-статус:
// not-found -> 404, отклоненный переход -> 409 (состояние не изменилось),
// сбой персистентности -> успех с предупреждением в логе
func (h *Handler) respondTransitionError(c *gin.Context, log *logrus.Entry, incident *models.Incident, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, service.ErrIncidentNotFound) {
		log.WithError(err).Warn("Transition requested for unknown incident")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return true
	}

	if errors.Is(err, service.ErrInvalidTransition) {
		log.WithError(err).Warn("Transition rejected")
		status := ""
		if incident != nil {
			status = string(incident.Status)
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":  "transition rejected",
			"status": status,
		})
		return true
	}

	var persistenceErr *service.PersistenceError
	if errors.As(err, &persistenceErr) && incident != nil {
		log.WithError(err).Warn("Transition applied but persistence degraded")
		return false
	}

	log.WithError(err).Error("Failed to transition incident in service")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	return true
}
