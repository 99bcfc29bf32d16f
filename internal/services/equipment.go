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

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, limit, offset uint64) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	now := time.Now()
	eq := entities.Equipment{
		ID:               uuid.NewString(),
		Name:             payload.Name,
		TeamID:           payload.TeamID,
		SerialNumber:     constants.DefaultSerialNumber,
		Category:         constants.DefaultCategory,
		Department:       constants.DefaultDepartment,
		Condition:        constants.DefaultCondition,
		HealthScore:      constants.DefaultHealthScore,
		IsScrap:          false,
		MaintenanceCount: 0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if payload.SerialNumber != nil {
		eq.SerialNumber = *payload.SerialNumber
	}
	if payload.Category != nil {
		eq.Category = *payload.Category
	}
	if payload.Department != nil {
		eq.Department = *payload.Department
	}
	if payload.Location != nil {
		eq.Location = *payload.Location
	}
	if payload.Condition != nil {
		eq.Condition = *payload.Condition
	}
	if payload.HealthScore != nil {
		eq.HealthScore = *payload.HealthScore
	}

	if err := s.equipmentRepo.CreateEquipment(ctx, eq); err != nil {
		return nil, err
	}
	s.logger.Info("equipment created", zap.String("equipmentId", eq.ID), zap.String("name", eq.Name))
	result := dto.NewEquipmentDTO(eq)
	return &result, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	eq, err := s.equipmentRepo.UpdateEquipment(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if payload.IsScrap != nil && *payload.IsScrap {
		s.logger.Info("equipment scrapped, new requests against it are blocked",
			zap.String("equipmentId", id))
	}
	result := dto.NewEquipmentDTO(*eq)
	return &result, nil
}

func (s *EquipmentService) GetEquipments(ctx context.Context, limit, offset uint64) ([]dto.EquipmentDTO, uint64, error) {
	list, total, err := s.equipmentRepo.GetEquipments(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.NewEquipmentDTOs(list), total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.NewEquipmentDTO(*eq)
	return &result, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}
