package service

import (
	"context"

	"bazi-insight/config"
	"bazi-insight/internal/repository"
	"bazi-insight/pkg/logger"

	"github.com/robfig/cron/v3"
)

// MaintenanceService periodically sweeps the session store: it prunes
// expired rows when the backend supports it and logs the live session
// count so store growth is observable.
type MaintenanceService interface {
	Start() error
	Stop()
}

type maintenanceService struct {
	cfg         *config.Config
	log         *logger.Logger
	sessionRepo repository.SessionRepository
	cron        *cron.Cron
}

func NewMaintenanceService(cfg *config.Config, log *logger.Logger, sessionRepo repository.SessionRepository) MaintenanceService {
	return &maintenanceService{
		cfg:         cfg,
		log:         log,
		sessionRepo: sessionRepo,
		cron:        cron.New(),
	}
}

func (s *maintenanceService) Start() error {
	if !s.cfg.Maintenance.Enabled {
		s.log.Info("Session maintenance disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.Maintenance.CleanupSchedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("Session maintenance started",
		logger.StringField("schedule", s.cfg.Maintenance.CleanupSchedule))
	return nil
}

func (s *maintenanceService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *maintenanceService) sweep() {
	ctx := context.Background()

	if pruner, ok := s.sessionRepo.(repository.SessionPruner); ok {
		pruned, err := pruner.PruneExpired(ctx)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to prune expired sessions", logger.ErrorField(err))
		} else if pruned > 0 {
			s.log.InfoContext(ctx, "Pruned expired sessions", logger.Field("pruned", pruned))
		}
	}

	if counter, ok := s.sessionRepo.(repository.SessionCounter); ok {
		count, err := counter.Count(ctx)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to count sessions", logger.ErrorField(err))
			return
		}
		s.log.InfoContext(ctx, "Session store sweep", logger.IntField("live_sessions", count))
	}
}
