package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	// Подготовка
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	incidents := []*models.Incident{
		{
			ID:           uuid.New(),
			ReporterName: "Venue Staff C",
			Location:     "Merchandise Booth 3",
			Details:      "Crowd pushing towards the booth",
			Source:       models.SourceUserReport,
			Status:       models.StatusPending,
			CreatedAt:    now.Add(time.Minute),
			UpdatedAt:    now.Add(time.Minute),
		},
		{
			ID:           uuid.New(),
			ReporterName: "AI Anomaly Monitor",
			Location:     "Sector A",
			Details:      "Automated detection: smoke, severity high, confidence 92%",
			Source:       models.SourceAutomatedDetection,
			Status:       models.StatusEscalated,
			CreatedAt:    now,
			UpdatedAt:    now.Add(30 * time.Second),
		},
	}

	// Действие
	require.NoError(t, store.Save(ctx, incidents))
	loaded, err := store.Load(ctx)

	// Проверки: эквивалентное множество - те же id, статусы, отметки времени
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for i := range incidents {
		assert.Equal(t, incidents[i].ID, loaded[i].ID)
		assert.Equal(t, incidents[i].Status, loaded[i].Status)
		assert.Equal(t, incidents[i].CreatedAt, loaded[i].CreatedAt)
		assert.Equal(t, incidents[i].Source, loaded[i].Source)
	}
}

func TestMemoryStore_LoadReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := &models.Incident{ID: uuid.New(), Status: models.StatusPending}
	require.NoError(t, store.Save(ctx, []*models.Incident{original}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	// Мутация загруженной копии не трогает снимок
	loaded[0].Status = models.StatusArchived

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reloaded[0].Status)
}

func TestMemoryStore_SaveReplacesSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &models.Incident{ID: uuid.New(), Status: models.StatusPending}
	require.NoError(t, store.Save(ctx, []*models.Incident{first}))

	second := first.Clone()
	second.Status = models.StatusAcknowledged
	require.NoError(t, store.Save(ctx, []*models.Incident{second}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, models.StatusAcknowledged, loaded[0].Status)
}

func TestMemoryStore_EmptyLoad(t *testing.T) {
	store := NewMemoryStore()

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
