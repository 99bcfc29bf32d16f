package dto

import (
	"github.com/aarondl/null/v8"

	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
)

// CreateEquipmentDTO requires a responsible team up front: the request
// lifecycle derives its default team from the equipment, so an unassigned
// asset would make every request against it orphaned.
type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required"`
	TeamID       string  `json:"team_id" validate:"required"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Category     *string `json:"category,omitempty"`
	Department   *string `json:"department,omitempty"`
	Location     *string `json:"location,omitempty"`
	Condition    *string `json:"condition,omitempty"`
	HealthScore  *int    `json:"health_score,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// UpdateEquipmentDTO is a partial update. IsScrap flips here; the maintenance
// counter never does, it is owned by the request service.
type UpdateEquipmentDTO struct {
	Name         *string     `json:"name,omitempty"`
	SerialNumber *string     `json:"serial_number,omitempty"`
	Category     *string     `json:"category,omitempty"`
	Department   *string     `json:"department,omitempty"`
	TeamID       *string     `json:"team_id,omitempty"`
	Location     null.String `json:"location,omitempty"`
	Condition    null.String `json:"condition,omitempty"`
	HealthScore  null.Int    `json:"health_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsScrap      *bool       `json:"is_scrap,omitempty"`
}

type EquipmentDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	SerialNumber     string `json:"serial_number"`
	Category         string `json:"category"`
	Department       string `json:"department"`
	TeamID           string `json:"team_id"`
	Location         string `json:"location"`
	Condition        string `json:"condition"`
	HealthScore      int    `json:"health_score"`
	IsScrap          bool   `json:"is_scrap"`
	MaintenanceCount int    `json:"maintenance_count"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func NewEquipmentDTO(e entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:               e.ID,
		Name:             e.Name,
		SerialNumber:     e.SerialNumber,
		Category:         e.Category,
		Department:       e.Department,
		TeamID:           e.TeamID,
		Location:         e.Location,
		Condition:        e.Condition,
		HealthScore:      e.HealthScore,
		IsScrap:          e.IsScrap,
		MaintenanceCount: e.MaintenanceCount,
		CreatedAt:        e.CreatedAt.Local().Format(dtoTimeLayout),
		UpdatedAt:        e.UpdatedAt.Local().Format(dtoTimeLayout),
	}
}

func NewEquipmentDTOs(list []entities.Equipment) []EquipmentDTO {
	out := make([]EquipmentDTO, 0, len(list))
	for _, e := range list {
		out = append(out, NewEquipmentDTO(e))
	}
	return out
}
