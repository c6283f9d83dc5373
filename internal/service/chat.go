package service

import (
	"context"
	"errors"
	"strings"

	"bazi-insight/config"
	"bazi-insight/internal/dto"
	"bazi-insight/internal/repository"
	"bazi-insight/pkg/logger"
)

// ErrMissingChart marks a chat request that arrived without chart data.
// The consultation prompt is built entirely from the chart, so there is
// nothing meaningful to answer without it.
var ErrMissingChart = errors.New("chart data required")

type ChatService interface {
	Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	cfg          *config.Config
	log          *logger.Logger
	geminiAIRepo repository.AIRepository
}

func NewChatService(cfg *config.Config, log *logger.Logger, geminiAIRepo repository.AIRepository) ChatService {
	return &chatService{
		cfg:          cfg,
		log:          log,
		geminiAIRepo: geminiAIRepo,
	}
}

func (s *chatService) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("message is required")
	}
	if req.BaziData == nil || req.BaziData.MCPData == nil {
		return nil, ErrMissingChart
	}

	answer, err := s.geminiAIRepo.Chat(ctx, req.BaziData.MCPData, req.Message, req.History)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get AI consultation", logger.ErrorField(err))
		return nil, err
	}

	return &dto.ChatResponse{Response: answer}, nil
}
