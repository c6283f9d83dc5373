package repository

import (
	"fmt"

	"bazi-insight/config"
	"bazi-insight/pkg/cache"
	"bazi-insight/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	SessionRepo  SessionRepository
	CalendarRepo CalendarRepository
	GeminiAIRepo AIRepository
}

// NewRepository wires the configured implementations. db is only required
// for the postgres session backend; the memory backend runs without it.
func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	var sessionRepo SessionRepository
	switch cfg.Session.Backend {
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("session backend %q requires a database connection", cfg.Session.Backend)
		}
		sessionRepo = NewPostgresSessionRepository(db, cfg.Session.TTL)
	case "memory":
		sessionRepo = NewMemorySessionRepository(inmemoryCache, cfg.Session.TTL)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}

	var calendarRepo CalendarRepository
	switch cfg.Calendar.Provider {
	case "remote":
		calendarRepo = NewRemoteCalendarRepository(cfg, log)
	case "local":
		calendarRepo = NewLocalCalendarRepository(log)
	default:
		return nil, fmt.Errorf("unknown calendar provider %q", cfg.Calendar.Provider)
	}

	return &Repository{
		SessionRepo:  sessionRepo,
		CalendarRepo: calendarRepo,
		GeminiAIRepo: geminiAIRepo,
	}, nil
}
