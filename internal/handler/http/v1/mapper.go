package v1

import (
	"time"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа.
// Остаток окна подтверждения считается от created_at, не от последнего
// изменения статуса.
func ModelToIncidentResponse(model *models.Incident, ackWindow time.Duration, now time.Time) *IncidentResponse {
	resp := &IncidentResponse{
		ID:           model.ID,
		ReporterName: model.ReporterName,
		Location:     model.Location,
		Details:      model.Details,
		Source:       string(model.Source),
		Status:       string(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}

	if model.Status == models.StatusPending {
		remaining := int64((ackWindow - now.Sub(model.CreatedAt)).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		resp.AckRemainingSeconds = &remaining
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident, ackWindow time.Duration, now time.Time) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident, ackWindow, now)
	}
	return responses
}
