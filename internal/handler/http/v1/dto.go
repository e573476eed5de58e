package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для создания инцидента из формы отчета
// @Description DTO для создания инцидента из формы отчета
type ReportIncidentRequest struct {
	ReporterName string `json:"reporter_name" validate:"required,min=2,max=255"`
	Location     string `json:"location" validate:"required,max=512"`
	Details      string `json:"details" validate:"required,max=4000"`
}

// AnomalyRequest DTO для кортежа от AI-пайплайна обнаружения аномалий
// @Description DTO для кортежа от AI-пайплайна обнаружения аномалий
type AnomalyRequest struct {
	Type       string  `json:"type" validate:"required,max=255"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Location   string  `json:"location" validate:"required,max=512"`
	Severity   string  `json:"severity" validate:"required,oneof=low medium high"`
}

// IncidentResponse DTO для ответа с информацией об инциденте.
// AckRemainingSeconds заполняется только для статуса Pending: остаток окна
// подтверждения, выводимый из created_at, - данные для отображения, сам
// переход в Escalated выполняет только менеджер.
type IncidentResponse struct {
	ID                  uuid.UUID `json:"id"`
	ReporterName        string    `json:"reporter_name"`
	Location            string    `json:"location"`
	Details             string    `json:"details"`
	Source              string    `json:"source"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	AckRemainingSeconds *int64    `json:"ack_remaining_seconds,omitempty"`
}

// TransitionResponse DTO для результата перехода статуса
// @Description DTO для результата перехода статуса
type TransitionResponse struct {
	Incident       *IncidentResponse `json:"incident"`
	PreviousStatus string            `json:"previous_status"`
}
