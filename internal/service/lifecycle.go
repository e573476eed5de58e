package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/crowdwatch/incident_lifecycle_system/internal/config"
	"github.com/crowdwatch/incident_lifecycle_system/internal/lifecycle"
	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IncidentStore определяет контракт адаптера персистентности. Менеджер
// вызывает Save после каждой мутации и Load один раз при старте.
type IncidentStore interface {
	Load(ctx context.Context) ([]*models.Incident, error)
	Save(ctx context.Context, incidents []*models.Incident) error
}

// Observer получает уведомления о созданиях и переходах статусов.
// Доставка всем зарегистрированным наблюдателям гарантирована до возврата
// вызвавшей операции.
type Observer interface {
	IncidentCreated(incident *models.Incident)
	IncidentTransitioned(incident *models.Incident, previous, next models.IncidentStatus)
}

// CreateIncidentInput - входные данные для создания инцидента
type CreateIncidentInput struct {
	ReporterName string
	Location     string
	Details      string
	Source       models.IncidentSource
}

// AnomalyInput - кортеж от внешнего AI-пайплайна обнаружения аномалий
type AnomalyInput struct {
	Type       string
	Confidence float64
	Location   string
	Severity   string
}

// IncidentManager определяет контракт бизнес-логики жизненного цикла инцидентов
type IncidentManager interface {
	Restore(ctx context.Context) error
	RegisterObserver(observer Observer)
	CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error)
	ReportAnomaly(ctx context.Context, input AnomalyInput) (*models.Incident, error)
	Acknowledge(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Archive(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListActive(ctx context.Context) ([]*models.Incident, error)
	ListAll(ctx context.Context) ([]*models.Incident, error)
	Close()
}

// incidentManager - единственный владелец множества инцидентов. Все мутации
// (создание, подтверждение, архивация и срабатывание таймера эскалации)
// сериализуются через один мьютекс: побеждает последний допустимый переход,
// таймер никогда не перебивает уже разрешенный инцидент.
type incidentManager struct {
	mu        sync.Mutex
	incidents map[uuid.UUID]*models.Incident
	order     []uuid.UUID // порядок создания, старые в начале
	timers    map[uuid.UUID]lifecycle.CancelFunc

	store     IncidentStore
	scheduler lifecycle.Scheduler
	observers []Observer
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewIncidentManager(store IncidentStore, scheduler lifecycle.Scheduler, logger *logrus.Logger, cfg *config.Config) IncidentManager {
	return &incidentManager{
		incidents: make(map[uuid.UUID]*models.Incident),
		timers:    make(map[uuid.UUID]lifecycle.CancelFunc),
		store:     store,
		scheduler: scheduler,
		logger:    logger,
		cfg:       cfg,
	}
}

// RegisterObserver регистрирует наблюдателя. Вызывается при сборке приложения,
// до первых операций.
func (m *incidentManager) RegisterObserver(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, observer)
}

// Restore восстанавливает множество инцидентов из адаптера и заново планирует
// проверки эскалации для инцидентов, оставшихся в статусе Pending. Инциденты,
// чье окно подтверждения истекло за время простоя, эскалируются сразу.
func (m *incidentManager) Restore(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"service": "lifecycle",
		"method":  "Restore",
	})
	log.Info("Restoring incident set from store")

	loaded, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service: could not load incidents: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	escalated := 0
	// Адаптер возвращает инциденты новые-первыми, внутренний порядок хранится
	// старые-первыми
	for i := len(loaded) - 1; i >= 0; i-- {
		incident := loaded[i].Clone()
		if _, exists := m.incidents[incident.ID]; exists {
			continue
		}
		m.incidents[incident.ID] = incident
		m.order = append(m.order, incident.ID)

		if incident.Status != models.StatusPending {
			continue
		}

		deadline := incident.CreatedAt.Add(m.cfg.AckWindow)
		if !deadline.After(m.scheduler.Now()) {
			previous := incident.Status
			incident.Status = models.StatusEscalated
			incident.UpdatedAt = m.scheduler.Now()
			m.notifyTransitionLocked(incident, previous)
			escalated++
			continue
		}
		m.scheduleEscalationLocked(incident.ID, deadline)
	}

	if escalated > 0 {
		if err := m.persistLocked(ctx, "Restore"); err != nil {
			log.WithError(err).Warn("Failed to persist escalations applied during restore")
		}
	}

	log.WithFields(logrus.Fields{
		"count":     len(m.incidents),
		"escalated": escalated,
	}).Info("Incident set restored")
	return nil
}

// CreateIncident создает инцидент в статусе Pending и планирует проверку
// эскалации на момент createdAt + окно подтверждения
func (m *incidentManager) CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":  "lifecycle",
		"method":   "CreateIncident",
		"reporter": input.ReporterName,
		"source":   input.Source,
	})

	if err := validateCreateInput(input); err != nil {
		log.WithError(err).Warn("Rejected incident creation with malformed input")
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.scheduler.Now()
	incident := &models.Incident{
		ID:           uuid.New(),
		ReporterName: strings.TrimSpace(input.ReporterName),
		Location:     strings.TrimSpace(input.Location),
		Details:      strings.TrimSpace(input.Details),
		Source:       input.Source,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	m.incidents[incident.ID] = incident
	m.order = append(m.order, incident.ID)
	m.scheduleEscalationLocked(incident.ID, incident.CreatedAt.Add(m.cfg.AckWindow))

	for _, observer := range m.observers {
		observer.IncidentCreated(incident.Clone())
	}

	log.WithField("incident_id", incident.ID).Info("Incident created")

	if err := m.persistLocked(ctx, "CreateIncident"); err != nil {
		log.WithError(err).Error("Incident created but not persisted")
		return incident.Clone(), err
	}
	return incident.Clone(), nil
}

// ReportAnomaly отображает кортеж AI-пайплайна в создание инцидента с
// источником AutomatedDetection
func (m *incidentManager) ReportAnomaly(ctx context.Context, input AnomalyInput) (*models.Incident, error) {
	if strings.TrimSpace(input.Type) == "" {
		return nil, newRequiredFieldError("type")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, newRequiredFieldError("location")
	}
	if strings.TrimSpace(input.Severity) == "" {
		return nil, newRequiredFieldError("severity")
	}
	if input.Confidence < 0 || input.Confidence > 1 {
		return nil, &ValidationError{Field: "confidence", Reason: "must be between 0 and 1"}
	}

	details := fmt.Sprintf("Automated detection: %s, severity %s, confidence %.0f%%",
		input.Type, input.Severity, input.Confidence*100)

	return m.CreateIncident(ctx, CreateIncidentInput{
		ReporterName: "AI Anomaly Monitor",
		Location:     input.Location,
		Details:      details,
		Source:       models.SourceAutomatedDetection,
	})
}

// Acknowledge переводит инцидент Pending -> Acknowledged и отменяет таймер
// эскалации. Для любого другого статуса возвращает отклоненный переход без
// изменения состояния.
func (m *incidentManager) Acknowledge(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return m.transition(ctx, id, models.StatusAcknowledged, "Acknowledge")
}

// Archive переводит инцидент Acknowledged/Escalated -> Archived.
// Archived - терминальный статус: повторная архивация отклоняется как no-op.
func (m *incidentManager) Archive(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return m.transition(ctx, id, models.StatusArchived, "Archive")
}

func (m *incidentManager) transition(ctx context.Context, id uuid.UUID, target models.IncidentStatus, op string) (*models.Incident, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      op,
		"incident_id": id,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	incident, ok := m.incidents[id]
	if !ok {
		log.Warn("Transition requested for unknown incident")
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}

	if !incident.Status.CanTransitionTo(target) {
		log.WithFields(logrus.Fields{
			"status": incident.Status,
			"target": target,
		}).Warn("Rejected invalid status transition")
		return incident.Clone(), fmt.Errorf("service: %s -> %s: %w", incident.Status, target, ErrInvalidTransition)
	}

	previous := incident.Status
	incident.Status = target
	incident.UpdatedAt = m.scheduler.Now()
	m.cancelEscalationLocked(id)
	m.notifyTransitionLocked(incident, previous)

	log.WithFields(logrus.Fields{
		"previous": previous,
		"status":   target,
	}).Info("Incident status transitioned")

	if err := m.persistLocked(ctx, op); err != nil {
		log.WithError(err).Error("Transition applied but not persisted")
		return incident.Clone(), err
	}
	return incident.Clone(), nil
}

// GetIncident возвращает копию инцидента по id
func (m *incidentManager) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	incident, ok := m.incidents[id]
	if !ok {
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}
	return incident.Clone(), nil
}

// ListActive возвращает инциденты со статусом, отличным от Archived,
// новые-первыми
func (m *incidentManager) ListActive(ctx context.Context) ([]*models.Incident, error) {
	return m.list(func(incident *models.Incident) bool {
		return !incident.Status.IsTerminal()
	}), nil
}

// ListAll возвращает все инциденты независимо от статуса, новые-первыми
func (m *incidentManager) ListAll(ctx context.Context) ([]*models.Incident, error) {
	return m.list(func(*models.Incident) bool { return true }), nil
}

func (m *incidentManager) list(keep func(*models.Incident) bool) []*models.Incident {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*models.Incident, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		incident := m.incidents[m.order[i]]
		if keep(incident) {
			result = append(result, incident.Clone())
		}
	}
	return result
}

// Close отменяет все запланированные проверки эскалации
func (m *incidentManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, cancel := range m.timers {
		cancel()
		delete(m.timers, id)
	}
}

// scheduleEscalationLocked планирует отложенную проверку эскалации.
// Вызывается под мьютексом.
func (m *incidentManager) scheduleEscalationLocked(id uuid.UUID, deadline time.Time) {
	m.timers[id] = m.scheduler.ScheduleAt(deadline, func() {
		m.escalate(id)
	})
}

// escalate - колбэк таймера. Перечитывает текущий статус под мьютексом:
// если инцидент уже подтвержден или заархивирован гонкой с действием
// пользователя, проверка становится no-op.
func (m *incidentManager) escalate(id uuid.UUID) {
	log := m.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "escalate",
		"incident_id": id,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	incident, ok := m.incidents[id]
	if !ok || incident.Status != models.StatusPending {
		delete(m.timers, id)
		return
	}

	previous := incident.Status
	incident.Status = models.StatusEscalated
	incident.UpdatedAt = m.scheduler.Now()
	delete(m.timers, id)
	m.notifyTransitionLocked(incident, previous)

	log.Info("Incident escalated after acknowledgment window elapsed")

	if err := m.persistLocked(context.Background(), "escalate"); err != nil {
		log.WithError(err).Error("Escalation applied but not persisted")
	}
}

func (m *incidentManager) cancelEscalationLocked(id uuid.UUID) {
	if cancel, ok := m.timers[id]; ok {
		cancel()
		delete(m.timers, id)
	}
}

func (m *incidentManager) notifyTransitionLocked(incident *models.Incident, previous models.IncidentStatus) {
	for _, observer := range m.observers {
		observer.IncidentTransitioned(incident.Clone(), previous, incident.Status)
	}
}

// persistLocked сохраняет полный снимок множества через адаптер. Сбой
// адаптера не откатывает изменение в памяти.
func (m *incidentManager) persistLocked(ctx context.Context, op string) error {
	snapshot := make([]*models.Incident, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		snapshot = append(snapshot, m.incidents[m.order[i]].Clone())
	}
	if err := m.store.Save(ctx, snapshot); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

func validateCreateInput(input CreateIncidentInput) error {
	if strings.TrimSpace(input.ReporterName) == "" {
		return newRequiredFieldError("reporter_name")
	}
	if strings.TrimSpace(input.Location) == "" {
		return newRequiredFieldError("location")
	}
	if strings.TrimSpace(input.Details) == "" {
		return newRequiredFieldError("details")
	}
	if !input.Source.IsValid() {
		return &ValidationError{Field: "source", Reason: "unknown incident source"}
	}
	return nil
}
