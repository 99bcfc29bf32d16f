package dto

import (
	"time"

	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
)

// CreateRequestDTO whitelists the fields a caller may set on a new request.
// Identity, status and timestamps are assigned by the service; a caller can
// not smuggle them in through the payload.
type CreateRequestDTO struct {
	EquipmentID   string     `json:"equipment_id" validate:"required"`
	Subject       *string    `json:"subject,omitempty"`
	Type          *string    `json:"type,omitempty" validate:"omitempty,oneof=Corrective Preventive"`
	Priority      *string    `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	AssignedTo    *string    `json:"assigned_to,omitempty"`
	Description   *string    `json:"description,omitempty"`
	TeamID        *string    `json:"team_id,omitempty"`
}

// UpdateRequestDTO is the strict partial-update payload. Status is deliberately
// absent here: it changes through the transition endpoint or the explicitly
// named override.
type UpdateRequestDTO struct {
	Subject       *string    `json:"subject,omitempty"`
	Type          *string    `json:"type,omitempty" validate:"omitempty,oneof=Corrective Preventive"`
	Priority      *string    `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	AssignedTo    *string    `json:"assigned_to,omitempty"`
	Description   *string    `json:"description,omitempty"`
	TeamID        *string    `json:"team_id,omitempty"`
}

type TransitionRequestDTO struct {
	Status string `json:"status" validate:"required"`
}

type RequestDTO struct {
	ID            string `json:"id"`
	Subject       string `json:"subject"`
	Status        string `json:"status"`
	EquipmentID   string `json:"equipment_id"`
	TeamID        string `json:"team_id"`
	Type          string `json:"type"`
	Priority      string `json:"priority"`
	ScheduledDate string `json:"scheduled_date"`
	AssignedTo    string `json:"assigned_to"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

const dtoTimeLayout = "2006-01-02 15:04:05"

func NewRequestDTO(e entities.Request) RequestDTO {
	return RequestDTO{
		ID:            e.ID,
		Subject:       e.Subject,
		Status:        e.Status,
		EquipmentID:   e.EquipmentID,
		TeamID:        e.TeamID,
		Type:          e.Type,
		Priority:      e.Priority,
		ScheduledDate: e.ScheduledDate.Local().Format(dtoTimeLayout),
		AssignedTo:    e.AssignedTo,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt.Local().Format(dtoTimeLayout),
		UpdatedAt:     e.UpdatedAt.Local().Format(dtoTimeLayout),
	}
}

func NewRequestDTOs(list []entities.Request) []RequestDTO {
	out := make([]RequestDTO, 0, len(list))
	for _, e := range list {
		out = append(out, NewRequestDTO(e))
	}
	return out
}
