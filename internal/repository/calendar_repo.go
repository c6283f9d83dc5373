package repository

import (
	"context"
	"time"

	"bazi-insight/internal/bazi"
	"bazi-insight/internal/model"
	"bazi-insight/pkg/logger"
)

// CalendarRepository is the chart calculation authority. Chart accuracy
// depends entirely on it; callers treat a failure as "accurate analysis
// unavailable" and never substitute simplified arithmetic.
type CalendarRepository interface {
	CalculateBySolar(ctx context.Context, instant time.Time, gender string) (*model.Chart, error)
}

// localCalendarRepository runs the in-process sexagenary engine.
type localCalendarRepository struct {
	engine *bazi.Engine
	logger *logger.Logger
}

func NewLocalCalendarRepository(log *logger.Logger) CalendarRepository {
	return &localCalendarRepository{
		engine: bazi.NewEngine(),
		logger: log,
	}
}

func (r *localCalendarRepository) CalculateBySolar(ctx context.Context, instant time.Time, gender string) (*model.Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chart, err := r.engine.Derive(bazi.Input{Instant: instant, Gender: gender})
	if err != nil {
		r.logger.ErrorContext(ctx, "chart derivation failed", logger.ErrorField(err))
		return nil, err
	}
	return chart, nil
}
