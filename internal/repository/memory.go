package repository

import (
	"context"
	"sync"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
)

// MemoryStore - адаптер персистентности в памяти для демо-режима и тестов.
// Хранит последний сохраненный снимок множества.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot []*models.Incident
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load возвращает копию последнего снимка, новые-первыми (порядок снимка)
func (s *MemoryStore) Load(ctx context.Context) ([]*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incidents := make([]*models.Incident, 0, len(s.snapshot))
	for _, incident := range s.snapshot {
		incidents = append(incidents, incident.Clone())
	}
	return incidents, nil
}

// Save замещает снимок копией переданного множества
func (s *MemoryStore) Save(ctx context.Context, incidents []*models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		snapshot = append(snapshot, incident.Clone())
	}
	s.snapshot = snapshot
	return nil
}
