package service

import (
	"context"
	"errors"
	"fmt"

	"bazi-insight/config"
	"bazi-insight/internal/bazi"
	"bazi-insight/internal/dto"
	"bazi-insight/internal/location"
	"bazi-insight/internal/model"
	"bazi-insight/internal/repository"
	"bazi-insight/internal/strategy"
	"bazi-insight/pkg/logger"
)

var (
	// ErrInvalidBirthDate marks a submission whose birth timestamp could
	// not be parsed into date and clock components.
	ErrInvalidBirthDate = errors.New("invalid birth date")

	// ErrChartUnavailable marks a failure of the calendrical authority.
	// It is never masked with a substitute chart.
	ErrChartUnavailable = errors.New("chart calculation unavailable")
)

type AnalysisService interface {
	Submit(ctx context.Context, req dto.SubmitBirthChartRequest) (*dto.SubmitBirthChartResponse, error)
	Get(ctx context.Context, id string) (*dto.GetAnalysisResponse, error)
}

type analysisService struct {
	cfg          *config.Config
	log          *logger.Logger
	resolver     *location.Resolver
	calendarRepo repository.CalendarRepository
	sessionRepo  repository.SessionRepository
	patterns     strategy.PatternAnalyzer
}

func NewAnalysisService(
	cfg *config.Config,
	log *logger.Logger,
	resolver *location.Resolver,
	calendarRepo repository.CalendarRepository,
	sessionRepo repository.SessionRepository,
	patterns strategy.PatternAnalyzer,
) AnalysisService {
	return &analysisService{
		cfg:          cfg,
		log:          log,
		resolver:     resolver,
		calendarRepo: calendarRepo,
		sessionRepo:  sessionRepo,
		patterns:     patterns,
	}
}

func (s *analysisService) Submit(ctx context.Context, req dto.SubmitBirthChartRequest) (*dto.SubmitBirthChartResponse, error) {
	date, clock, err := location.ParseClientDateTime(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBirthDate, err)
	}

	zone := s.resolver.Resolve(req.BirthPlace)
	instant, err := location.ReferenceInstant(date, clock, zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBirthDate, err)
	}

	chart, err := s.calendarRepo.CalculateBySolar(ctx, instant, req.Gender)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to calculate chart",
			logger.ErrorField(err),
			logger.StringField("birth_place", req.BirthPlace),
			logger.StringField("timezone", zone))
		return nil, fmt.Errorf("%w: %v", ErrChartUnavailable, err)
	}

	birth := model.BirthInfo{
		Nickname:   req.Nickname,
		Gender:     req.Gender,
		BirthDate:  req.BirthDate,
		BirthPlace: req.BirthPlace,
	}
	id, err := s.sessionRepo.Create(ctx, birth, *chart)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to store analysis session", logger.ErrorField(err))
		return nil, err
	}

	s.log.InfoContext(ctx, "Analysis session created",
		logger.StringField("session_id", id),
		logger.StringField("timezone", zone))

	return &dto.SubmitBirthChartResponse{
		ID:      id,
		Success: true,
		Preview: dto.ChartPreview{
			EightCharacters: chart.EightCharacters,
			Zodiac:          chart.Zodiac,
			DayMaster:       chart.DayMaster,
		},
	}, nil
}

// Get recomputes the derived fields from the stored chart on every read
// instead of caching them alongside it, so they cannot drift.
func (s *analysisService) Get(ctx context.Context, id string) (*dto.GetAnalysisResponse, error) {
	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	elements := bazi.CalculateElements(session.Chart.FourPillars)
	yinYang := bazi.CalculateYinYang(session.Chart.FourPillars)
	patterns := s.patterns.Analyze(elements, &session.Chart)

	return &dto.GetAnalysisResponse{
		UserInfo: dto.UserInfo{
			Nickname:   session.BirthInfo.Nickname,
			Gender:     session.BirthInfo.Gender,
			BirthDate:  session.BirthInfo.BirthDate,
			BirthPlace: session.BirthInfo.BirthPlace,
		},
		MCPData:     session.Chart,
		FourPillars: dto.NewDisplayPillars(session.Chart.FourPillars),
		Elements:    elements,
		YinYang:     yinYang,
		Patterns:    patterns,
	}, nil
}
