package webhook

import (
	"context"
	"time"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/sirupsen/logrus"
)

// LifecycleObserver - наблюдатель менеджера жизненного цикла, транслирующий
// создания и переходы статусов в очередь событий. Сбой публикации логируется
// и не блокирует операцию: доставка вебхуков - best effort.
type LifecycleObserver struct {
	publisher EventPublisher
	logger    *logrus.Logger
}

// NewLifecycleObserver создает наблюдателя поверх публикатора событий
func NewLifecycleObserver(publisher EventPublisher, logger *logrus.Logger) *LifecycleObserver {
	return &LifecycleObserver{
		publisher: publisher,
		logger:    logger,
	}
}

// IncidentCreated публикует событие о создании инцидента
func (o *LifecycleObserver) IncidentCreated(incident *models.Incident) {
	event := Event{
		EventType: EventIncidentCreated,
		Incident:  incident,
		NewStatus: incident.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := o.publisher.Publish(context.Background(), event); err != nil {
		o.logger.WithError(err).WithField("incident_id", incident.ID).
			Error("Failed to publish incident created event")
	}
}

// IncidentTransitioned публикует событие о переходе статуса
func (o *LifecycleObserver) IncidentTransitioned(incident *models.Incident, previous, next models.IncidentStatus) {
	event := Event{
		EventType:      EventIncidentTransitioned,
		Incident:       incident,
		PreviousStatus: previous,
		NewStatus:      next,
		Timestamp:      time.Now().UTC(),
	}
	if err := o.publisher.Publish(context.Background(), event); err != nil {
		o.logger.WithError(err).WithField("incident_id", incident.ID).
			Error("Failed to publish incident transitioned event")
	}
}
