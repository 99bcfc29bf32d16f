package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

// DashboardService serves the read-only summary. Results are cached briefly;
// a broken cache degrades to querying the store, never to an error.
type DashboardService struct {
	repo     repositories.DashboardRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewDashboardService(
	repo repositories.DashboardRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, constants.CacheKeyDashboardStats); err == nil && cached != "" {
			var stats dto.DashboardStatsDTO
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			s.logger.Debug("dashboard cache entry was not parseable, recomputing")
		}
	}

	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, constants.CacheKeyDashboardStats, string(raw), s.cacheTTL); err != nil {
				s.logger.Debug("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}
