package dto

// DashboardStatsDTO is the read-only summary behind GET /api/dashboard.
// Computed from the collections, cached briefly, never written back.
type DashboardStatsDTO struct {
	TotalEquipment     uint64            `json:"total_equipment"`
	ScrappedEquipment  uint64            `json:"scrapped_equipment"`
	TotalTeams         uint64            `json:"total_teams"`
	ActiveRequests     uint64            `json:"active_requests"`
	CompletedRequests  uint64            `json:"completed_requests"`
	RequestsByStatus   map[string]uint64 `json:"requests_by_status"`
	RequestsByPriority map[string]uint64 `json:"requests_by_priority"`
}
