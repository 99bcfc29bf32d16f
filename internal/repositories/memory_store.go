package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

// MemoryStore keeps all three collections behind one mutex, mirroring the
// single-writer file store this service replaces. It backs the lifecycle
// tests and small deployments that run without Postgres. It deliberately does
// NOT implement AtomicRequestCreatorInterface, so the request service goes
// through the dual-write path against it.
type MemoryStore struct {
	mu         sync.Mutex
	equipments map[string]entities.Equipment
	teams      map[string]entities.Team
	requests   map[string]entities.Request

	incrementErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		equipments: make(map[string]entities.Equipment),
		teams:      make(map[string]entities.Team),
		requests:   make(map[string]entities.Request),
	}
}

// FailNextIncrement makes the next IncrementMaintenanceCount call return err.
// Used to exercise the partial-commit path.
func (s *MemoryStore) FailNextIncrement(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incrementErr = err
}

// --- EquipmentRepositoryInterface ---

func (s *MemoryStore) GetEquipments(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]entities.Equipment, 0, len(s.equipments))
	for _, e := range s.equipments {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	total := uint64(len(list))
	return paginate(list, limit, offset), total, nil
}

func (s *MemoryStore) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.equipments[id]
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}
	return &e, nil
}

func (s *MemoryStore) CreateEquipment(ctx context.Context, eq entities.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.equipments[eq.ID]; exists {
		return apperrors.ErrConflict
	}
	s.equipments[eq.ID] = eq
	return nil
}

func (s *MemoryStore) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.equipments[id]
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}
	if payload.Name != nil {
		e.Name = *payload.Name
	}
	if payload.SerialNumber != nil {
		e.SerialNumber = *payload.SerialNumber
	}
	if payload.Category != nil {
		e.Category = *payload.Category
	}
	if payload.Department != nil {
		e.Department = *payload.Department
	}
	if payload.TeamID != nil {
		e.TeamID = *payload.TeamID
	}
	if payload.Location.Valid {
		e.Location = payload.Location.String
	}
	if payload.Condition.Valid {
		e.Condition = payload.Condition.String
	}
	if payload.HealthScore.Valid {
		e.HealthScore = payload.HealthScore.Int
	}
	if payload.IsScrap != nil {
		e.IsScrap = *payload.IsScrap
	}
	s.equipments[id] = e
	return &e, nil
}

func (s *MemoryStore) DeleteEquipment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipments[id]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	delete(s.equipments, id)
	return nil
}

func (s *MemoryStore) IncrementMaintenanceCount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.incrementErr != nil {
		err := s.incrementErr
		s.incrementErr = nil
		return err
	}
	e, ok := s.equipments[id]
	if !ok {
		return apperrors.ErrEquipmentNotFound
	}
	e.MaintenanceCount++
	s.equipments[id] = e
	return nil
}

// --- TeamRepositoryInterface ---

func (s *MemoryStore) GetTeams(ctx context.Context, limit, offset uint64) ([]entities.Team, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]entities.Team, 0, len(s.teams))
	for _, t := range s.teams {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	total := uint64(len(list))
	return paginate(list, limit, offset), total, nil
}

func (s *MemoryStore) FindTeam(ctx context.Context, id string) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return &t, nil
}

func (s *MemoryStore) CreateTeam(ctx context.Context, team entities.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.teams[team.ID]; exists {
		return apperrors.ErrConflict
	}
	s.teams[team.ID] = team
	return nil
}

func (s *MemoryStore) DeleteTeam(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return apperrors.ErrTeamNotFound
	}
	delete(s.teams, id)
	return nil
}

// --- RequestRepositoryInterface ---

func (s *MemoryStore) GetRequests(ctx context.Context, filter RequestFilter, limit, offset uint64) ([]entities.Request, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]entities.Request, 0, len(s.requests))
	for _, r := range s.requests {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.EquipmentID != "" && r.EquipmentID != filter.EquipmentID {
			continue
		}
		if filter.TeamID != "" && r.TeamID != filter.TeamID {
			continue
		}
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	total := uint64(len(list))
	return paginate(list, limit, offset), total, nil
}

func (s *MemoryStore) FindRequest(ctx context.Context, id string) (*entities.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &r, nil
}

func (s *MemoryStore) CreateRequest(ctx context.Context, req entities.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.requests[req.ID]; exists {
		return apperrors.ErrConflict
	}
	s.requests[req.ID] = req
	return nil
}

func (s *MemoryStore) ReplaceRequest(ctx context.Context, req entities.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[req.ID]; !ok {
		return apperrors.ErrRequestNotFound
	}
	s.requests[req.ID] = req
	return nil
}

func (s *MemoryStore) DeleteRequest(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	delete(s.requests, id)
	return nil
}

func (s *MemoryStore) CountActiveByTeam(ctx context.Context, teamID string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total uint64
	for _, r := range s.requests {
		if r.TeamID == teamID && !constants.IsTerminalStatus(r.Status) {
			total++
		}
	}
	return total, nil
}

func paginate[T any](list []T, limit, offset uint64) []T {
	if offset >= uint64(len(list)) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < uint64(len(list)) {
		list = list[:limit]
	}
	return list
}
