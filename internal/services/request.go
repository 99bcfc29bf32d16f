package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter repositories.RequestFilter, limit, offset uint64) ([]dto.RequestDTO, uint64, error)
	FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	TransitionStatus(ctx context.Context, id, target string) (*dto.RequestDTO, error)
	OverrideStatus(ctx context.Context, id, target string) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, id string) error
}

// RequestService owns the request lifecycle: it is the only write path for
// requests and for the equipment maintenance counter.
type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateRequest validates the equipment reference, applies field defaults and
// persists the new request together with the equipment counter increment.
// When the store can do both writes in one transaction it does; otherwise a
// failed counter write after a persisted request surfaces as PartialCommitError.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			return nil, apperrors.ErrEquipmentReference
		}
		return nil, err
	}
	if equipment.IsScrap {
		s.logger.Warn("rejected request against scrapped equipment",
			zap.String("equipmentId", equipment.ID))
		return nil, apperrors.ErrEquipmentScrapped
	}

	now := s.now()
	req := entities.Request{
		ID:            uuid.NewString(),
		Subject:       utils.SafeDeref(payload.Subject),
		Status:        constants.StatusNew,
		EquipmentID:   equipment.ID,
		TeamID:        equipment.TeamID,
		Type:          constants.DefaultRequestType,
		Priority:      constants.DefaultRequestPriority,
		ScheduledDate: now,
		AssignedTo:    utils.SafeDeref(payload.AssignedTo),
		Description:   utils.SafeDeref(payload.Description),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if payload.TeamID != nil && *payload.TeamID != "" {
		req.TeamID = *payload.TeamID
	}
	if payload.Type != nil {
		req.Type = *payload.Type
	}
	if payload.Priority != nil {
		req.Priority = *payload.Priority
	}
	if payload.ScheduledDate != nil {
		req.ScheduledDate = *payload.ScheduledDate
	}

	if atomicRepo, ok := s.requestRepo.(repositories.AtomicRequestCreatorInterface); ok {
		if err := atomicRepo.CreateRequestWithCounter(ctx, req); err != nil {
			return nil, err
		}
	} else {
		if err := s.requestRepo.CreateRequest(ctx, req); err != nil {
			return nil, err
		}
		if err := s.equipmentRepo.IncrementMaintenanceCount(ctx, equipment.ID); err != nil {
			partial := &apperrors.PartialCommitError{
				RequestID:   req.ID,
				EquipmentID: equipment.ID,
				Err:         err,
			}
			s.logger.Error("maintenance counter increment failed after request write",
				zap.String("requestId", req.ID),
				zap.String("equipmentId", equipment.ID),
				zap.Error(err))
			return nil, partial
		}
	}

	s.logger.Info("request created",
		zap.String("requestId", req.ID),
		zap.String("equipmentId", equipment.ID))
	result := dto.NewRequestDTO(req)
	return &result, nil
}

// TransitionStatus moves a request along the transition table. Anything off
// the table, same-state moves included, fails with InvalidTransitionError.
func (s *RequestService) TransitionStatus(ctx context.Context, id, target string) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !constants.CanTransition(req.Status, target) {
		return nil, apperrors.NewInvalidTransitionError(req.Status, target)
	}

	req.Status = target
	req.UpdatedAt = s.now()
	if err := s.requestRepo.ReplaceRequest(ctx, *req); err != nil {
		return nil, err
	}

	s.logger.Info("request status changed",
		zap.String("requestId", req.ID),
		zap.String("status", target))
	result := dto.NewRequestDTO(*req)
	return &result, nil
}

// OverrideStatus writes the status directly, skipping the transition table.
// This is an administrative escape hatch and is exposed under its own route;
// the regular update path never touches status.
func (s *RequestService) OverrideStatus(ctx context.Context, id, target string) (*dto.RequestDTO, error) {
	if !constants.IsValidStatus(target) {
		return nil, apperrors.NewInvalidInputError("unknown status %q", target)
	}

	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Warn("request status overridden without transition validation",
		zap.String("requestId", req.ID),
		zap.String("from", req.Status),
		zap.String("to", target))

	req.Status = target
	req.UpdatedAt = s.now()
	if err := s.requestRepo.ReplaceRequest(ctx, *req); err != nil {
		return nil, err
	}
	result := dto.NewRequestDTO(*req)
	return &result, nil
}

// UpdateRequest merges the supplied fields over the stored record. Supplied
// fields win, omitted fields stay untouched, and updated_at is stamped on
// every successful call even when the merge changes nothing visible.
func (s *RequestService) UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Subject != nil {
		req.Subject = *payload.Subject
	}
	if payload.Type != nil {
		req.Type = *payload.Type
	}
	if payload.Priority != nil {
		req.Priority = *payload.Priority
	}
	if payload.ScheduledDate != nil {
		req.ScheduledDate = *payload.ScheduledDate
	}
	if payload.AssignedTo != nil {
		req.AssignedTo = *payload.AssignedTo
	}
	if payload.Description != nil {
		req.Description = *payload.Description
	}
	if payload.TeamID != nil {
		req.TeamID = *payload.TeamID
	}
	req.UpdatedAt = s.now()

	if err := s.requestRepo.ReplaceRequest(ctx, *req); err != nil {
		return nil, err
	}
	result := dto.NewRequestDTO(*req)
	return &result, nil
}

func (s *RequestService) GetRequests(ctx context.Context, filter repositories.RequestFilter, limit, offset uint64) ([]dto.RequestDTO, uint64, error) {
	list, total, err := s.requestRepo.GetRequests(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.NewRequestDTOs(list), total, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.NewRequestDTO(*req)
	return &result, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}
