package service

import (
	"context"
	"time"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/repository"
)

type statsService struct {
	stats repository.StatsRepo
	now   func() time.Time
}

func NewStatsService(stats repository.StatsRepo) StatsService {
	return &statsService{stats: stats, now: time.Now}
}

func (s *statsService) PeriodStats(ctx context.Context, period domain.Period) (*domain.PeriodStats, error) {
	return s.stats.PeriodStats(ctx, period, periodStart(period, s.now()))
}

func (s *statsService) SellerStats(ctx context.Context, period domain.Period) ([]*domain.SellerStats, error) {
	return s.stats.SellerStats(ctx, periodStart(period, s.now()))
}
