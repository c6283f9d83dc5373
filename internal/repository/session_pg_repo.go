package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bazi-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// postgresSessionRepository is the durable session store. Expiry is handled
// by the maintenance sweep; reads apply the TTL themselves so an expired row
// is NotFound even before the sweep removes it.
type postgresSessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewPostgresSessionRepository(db *gorm.DB, ttl time.Duration) SessionRepository {
	return &postgresSessionRepository{db: db, ttl: ttl}
}

func (r *postgresSessionRepository) Create(ctx context.Context, birth model.BirthInfo, chart model.Chart) (string, error) {
	chartJSON, err := json.Marshal(chart)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chart: %w", err)
	}

	row := model.AnalysisSessionRow{
		ID:         uuid.NewString(),
		Nickname:   birth.Nickname,
		Gender:     birth.Gender,
		BirthDate:  birth.BirthDate,
		BirthPlace: birth.BirthPlace,
		Chart:      chartJSON,
		CreatedAt:  time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to insert analysis session: %w", err)
	}
	return row.ID, nil
}

func (r *postgresSessionRepository) Get(ctx context.Context, id string) (*model.AnalysisSession, error) {
	var row model.AnalysisSessionRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis session: %w", err)
	}

	if r.ttl > 0 && time.Since(row.CreatedAt) > r.ttl {
		return nil, ErrSessionNotFound
	}

	var chart model.Chart
	if err := json.Unmarshal(row.Chart, &chart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored chart: %w", err)
	}

	return &model.AnalysisSession{
		ID: row.ID,
		BirthInfo: model.BirthInfo{
			Nickname:   row.Nickname,
			Gender:     row.Gender,
			BirthDate:  row.BirthDate,
			BirthPlace: row.BirthPlace,
		},
		Chart:     chart,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *postgresSessionRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AnalysisSessionRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count analysis sessions: %w", err)
	}
	return int(count), nil
}

// PruneExpired removes sessions older than the TTL. Called by the
// maintenance scheduler, never by request handlers.
func (r *postgresSessionRepository) PruneExpired(ctx context.Context) (int64, error) {
	if r.ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().Add(-r.ttl)
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.AnalysisSessionRow{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SessionPruner is implemented by stores with an explicit expiry sweep.
type SessionPruner interface {
	PruneExpired(ctx context.Context) (int64, error)
}
