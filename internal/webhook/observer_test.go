package webhook_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/crowdwatch/incident_lifecycle_system/internal/webhook"
	"github.com/crowdwatch/incident_lifecycle_system/internal/webhook/mocks"
)

func newTestObserver(t *testing.T) (*webhook.LifecycleObserver, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	publisherMock := mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return webhook.NewLifecycleObserver(publisherMock, logger), publisherMock
}

func TestLifecycleObserver_IncidentCreated(t *testing.T) {
	// Подготовка
	observer, publisherMock := newTestObserver(t)
	incident := &models.Incident{
		ID:     uuid.New(),
		Status: models.StatusPending,
	}

	// Ожидания
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ any, event webhook.Event) {
			if event.EventType != webhook.EventIncidentCreated {
				t.Errorf("unexpected event type %q", event.EventType)
			}
			if event.Incident.ID != incident.ID {
				t.Errorf("unexpected incident id %s", event.Incident.ID)
			}
		}).Return(nil).Times(1)

	// Действие
	observer.IncidentCreated(incident)
}

func TestLifecycleObserver_IncidentTransitioned(t *testing.T) {
	// Подготовка
	observer, publisherMock := newTestObserver(t)
	incident := &models.Incident{
		ID:     uuid.New(),
		Status: models.StatusEscalated,
	}

	// Ожидания
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ any, event webhook.Event) {
			if event.EventType != webhook.EventIncidentTransitioned {
				t.Errorf("unexpected event type %q", event.EventType)
			}
			if event.PreviousStatus != models.StatusPending || event.NewStatus != models.StatusEscalated {
				t.Errorf("unexpected statuses %s -> %s", event.PreviousStatus, event.NewStatus)
			}
		}).Return(nil).Times(1)

	// Действие
	observer.IncidentTransitioned(incident, models.StatusPending, models.StatusEscalated)
}

// Сбой публикации логируется и не паникует: доставка best effort
func TestLifecycleObserver_PublishFailureDoesNotPanic(t *testing.T) {
	observer, publisherMock := newTestObserver(t)
	incident := &models.Incident{ID: uuid.New(), Status: models.StatusPending}

	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(2)

	observer.IncidentCreated(incident)
	observer.IncidentTransitioned(incident, models.StatusPending, models.StatusEscalated)
}
