package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
)

// DashboardRepositoryInterface is strictly read-side: it aggregates the
// collections and never mutates them.
type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type dashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &dashboardRepository{storage: storage}
}

func (r *dashboardRepository) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{
		RequestsByStatus:   map[string]uint64{},
		RequestsByPriority: map[string]uint64{},
	}

	equipmentQuery, _, err := sq.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE is_scrap)",
	).From(equipmentTable).ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, equipmentQuery).Scan(&stats.TotalEquipment, &stats.ScrappedEquipment); err != nil {
		return nil, err
	}

	teamQuery, _, err := sq.Select("COUNT(*)").From(teamTable).ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, teamQuery).Scan(&stats.TotalTeams); err != nil {
		return nil, err
	}

	statusQuery, _, err := sq.Select("status", "COUNT(*)").From(requestTable).GroupBy("status").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, statusQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.RequestsByStatus[status] = count
		if constants.IsTerminalStatus(status) {
			stats.CompletedRequests += count
		} else {
			stats.ActiveRequests += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	priorityQuery, _, err := sq.Select("priority", "COUNT(*)").From(requestTable).GroupBy("priority").ToSql()
	if err != nil {
		return nil, err
	}
	prows, err := r.storage.Query(ctx, priorityQuery)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var priority string
		var count uint64
		if err := prows.Scan(&priority, &count); err != nil {
			return nil, err
		}
		stats.RequestsByPriority[priority] = count
	}
	return stats, prows.Err()
}
