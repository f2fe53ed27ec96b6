package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/repository"
)

// statsService implements StatsService.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    zerolog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(statsRepo repository.StatsRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		logger:    logger.With().Str("service", "stats").Logger(),
	}
}

// Stats retrieves content counts for the admin dashboard.
func (s *statsService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.statsRepo.Stats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get dashboard stats")
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}
