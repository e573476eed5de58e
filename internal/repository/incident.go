package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/crowdwatch/incident_lifecycle_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	snapshotCacheKey = "incidents:snapshot"
	snapshotCacheTTL = 24 * time.Hour
)

// IncidentRepository - адаптер персистентности поверх PostgreSQL. После
// каждого Save обновляет снимок множества в Redis; при недоступности
// PostgreSQL Load откатывается на этот снимок.
type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentStore {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Load возвращает все инциденты из бд, новые-первыми
func (r *IncidentRepository) Load(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT
			id,
			reporter_name,
			location,
			details,
			source,
			status,
			created_at,
			updated_at
		FROM incidents
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		// Пробуем восстановиться из снимка в Redis
		if cached, cacheErr := r.loadSnapshotFromCache(ctx); cacheErr == nil && cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("failed to load incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.ReporterName,
			&incident.Location,
			&incident.Details,
			&incident.Source,
			&incident.Status,
			&incident.CreatedAt,
			&incident.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident rows iteration: %w", err)
	}
	return incidents, nil
}

// Save приводит таблицу к переданному снимку множества. Инциденты никогда не
// удаляются физически (архивация - это статус), поэтому достаточно батча
// upsert-запросов.
func (r *IncidentRepository) Save(ctx context.Context, incidents []*models.Incident) error {
	query := `
		INSERT INTO incidents (id, reporter_name, location, details, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at;
	`
	batch := &pgx.Batch{}
	for _, incident := range incidents {
		batch.Queue(query,
			incident.ID,
			incident.ReporterName,
			incident.Location,
			incident.Details,
			incident.Source,
			incident.Status,
			incident.CreatedAt,
			incident.UpdatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range incidents {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save incidents batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close incidents batch: %w", err)
	}

	// Снимок в Redis - резерв для восстановления при недоступной бд,
	// сбой кеша сохранение не ломает
	_ = r.saveSnapshotToCache(ctx, incidents)
	return nil
}

// saveSnapshotToCache сохраняет снимок множества инцидентов в Redis
func (r *IncidentRepository) saveSnapshotToCache(ctx context.Context, incidents []*models.Incident) error {
	val, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("failed to marshal incidents snapshot: %w", err)
	}
	if err := r.redisClient.Set(ctx, snapshotCacheKey, val, snapshotCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incidents snapshot in cache: %w", err)
	}
	return nil
}

// loadSnapshotFromCache пытается получить снимок множества из Redis
func (r *IncidentRepository) loadSnapshotFromCache(ctx context.Context) ([]*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incidents snapshot from cache: %w", err)
	}

	incidents := make([]*models.Incident, 0)
	if err := json.Unmarshal(val, &incidents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incidents snapshot: %w", err)
	}
	return incidents, nil
}
