package service

import (
	"bazi-insight/config"
	"bazi-insight/internal/location"
	"bazi-insight/internal/repository"
	"bazi-insight/internal/strategy"
	"bazi-insight/pkg/logger"
)

type Service struct {
	AnalysisService    AnalysisService
	ChatService        ChatService
	MaintenanceService MaintenanceService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
) *Service {
	resolver := location.NewResolver(log)
	patterns := strategy.NewPatternAnalyzer()

	analysisService := NewAnalysisService(cfg, log, resolver, repo.CalendarRepo, repo.SessionRepo, patterns)
	chatService := NewChatService(cfg, log, repo.GeminiAIRepo)
	maintenanceService := NewMaintenanceService(cfg, log, repo.SessionRepo)

	return &Service{
		AnalysisService:    analysisService,
		ChatService:        chatService,
		MaintenanceService: maintenanceService,
	}
}
