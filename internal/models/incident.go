package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - закрытое перечисление статусов инцидента
type IncidentStatus string

const (
	StatusPending      IncidentStatus = "Pending"
	StatusAcknowledged IncidentStatus = "Acknowledged"
	StatusEscalated    IncidentStatus = "Escalated"
	StatusArchived     IncidentStatus = "Archived"
)

// IncidentSource - источник создания инцидента
type IncidentSource string

const (
	SourceUserReport         IncidentSource = "UserReport"
	SourceAutomatedDetection IncidentSource = "AutomatedDetection"
)

// allowedTransitions - полная таблица допустимых переходов.
// Archived - терминальный статус, из него переходов нет.
var allowedTransitions = map[IncidentStatus]map[IncidentStatus]bool{
	StatusPending: {
		StatusAcknowledged: true,
		StatusEscalated:    true,
	},
	StatusAcknowledged: {
		StatusArchived: true,
	},
	StatusEscalated: {
		StatusArchived: true,
	},
	StatusArchived: {},
}

// IsValid проверяет, что статус входит в закрытое множество
func (s IncidentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal возвращает true для терминального статуса
func (s IncidentStatus) IsTerminal() bool {
	return s == StatusArchived
}

// CanTransitionTo проверяет допустимость перехода по таблице
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	return allowedTransitions[s][next]
}

// IsValidSource проверяет, что источник входит в закрытое множество
func (s IncidentSource) IsValid() bool {
	return s == SourceUserReport || s == SourceAutomatedDetection
}

// Incident - запись о событии, требующем внимания службы безопасности.
// ReporterName, Location, Details, Source и CreatedAt неизменяемы после создания;
// мутируется только Status и только через менеджер жизненного цикла.
type Incident struct {
	ID           uuid.UUID      `json:"id"`
	ReporterName string         `json:"reporter_name"`
	Location     string         `json:"location"`
	Details      string         `json:"details"`
	Source       IncidentSource `json:"source"`
	Status       IncidentStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Clone возвращает независимую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
