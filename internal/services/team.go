package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context, limit, offset uint64) ([]dto.TeamDTO, uint64, error)
	FindTeam(ctx context.Context, id string) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id string) error
}

type TeamService struct {
	teamRepo    repositories.TeamRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{teamRepo: teamRepo, requestRepo: requestRepo, logger: logger}
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	team := entities.Team{
		ID:             uuid.NewString(),
		Name:           payload.Name,
		Specialization: constants.DefaultSpecialization,
		Members:        payload.Members,
		CreatedAt:      time.Now(),
	}
	if payload.Specialization != nil {
		team.Specialization = *payload.Specialization
	}
	if team.Members == nil {
		team.Members = []string{}
	}

	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		return nil, err
	}
	s.logger.Info("team created", zap.String("teamId", team.ID), zap.String("name", team.Name))

	// A fresh team has no requests yet.
	result := dto.NewTeamDTO(team, 0)
	return &result, nil
}

// GetTeams lists teams with their active request count, derived on read from
// the requests collection.
func (s *TeamService) GetTeams(ctx context.Context, limit, offset uint64) ([]dto.TeamDTO, uint64, error) {
	teams, total, err := s.teamRepo.GetTeams(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.TeamDTO, 0, len(teams))
	for _, team := range teams {
		active, err := s.requestRepo.CountActiveByTeam(ctx, team.ID)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, dto.NewTeamDTO(team, active))
	}
	return list, total, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id string) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	active, err := s.requestRepo.CountActiveByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	result := dto.NewTeamDTO(*team, active)
	return &result, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}
