package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bazi-insight/config"
	"bazi-insight/internal/model"
	"bazi-insight/pkg/httpclient"
	"bazi-insight/pkg/logger"
)

// remoteCalendarRepository delegates chart calculation to an external
// provider over HTTP. The configured timeout bounds every call.
type remoteCalendarRepository struct {
	httpClient httpclient.HTTPClient
	cfg        *config.Config
	logger     *logger.Logger
}

func NewRemoteCalendarRepository(cfg *config.Config, log *logger.Logger) CalendarRepository {
	return &remoteCalendarRepository{
		httpClient: httpclient.New(cfg.Calendar.BaseURL, cfg.Calendar.Timeout, ""),
		cfg:        cfg,
		logger:     log,
	}
}

type remoteCalculateRequest struct {
	SolarDatetime string `json:"solarDatetime"`
	Gender        string `json:"gender"`
}

func (r *remoteCalendarRepository) CalculateBySolar(ctx context.Context, instant time.Time, gender string) (*model.Chart, error) {
	payload := remoteCalculateRequest{
		SolarDatetime: instant.UTC().Format(time.RFC3339),
		Gender:        gender,
	}

	var chart model.Chart
	resp, err := r.httpClient.Post(ctx, "/calculate", payload, nil, &chart)
	if err != nil {
		r.logger.ErrorContext(ctx, "remote calendar provider unreachable", logger.ErrorField(err))
		return nil, fmt.Errorf("calendar provider unreachable: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "remote calendar provider returned error",
			logger.IntField("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("calendar provider returned status %d", resp.StatusCode)
	}

	return &chart, nil
}
