package services

import (
	"context"
	"fmt"
	"log/slog"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/logger/sl"
)

type StatsProvider interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// StatsService reports entity counts for the admin dashboard.
type StatsService struct {
	log      *slog.Logger
	provider StatsProvider
}

func NewStatsService(log *slog.Logger, provider StatsProvider) *StatsService {
	return &StatsService{log: log, provider: provider}
}

func (s *StatsService) Stats(ctx context.Context) (models.Stats, error) {
	const op = "stats_service.Stats"

	stats, err := s.provider.Stats(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to count entities", sl.Err(err))
		return models.Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
