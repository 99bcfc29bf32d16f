package dto

import "github.com/maitriparekhcs2848/GearGuard/internal/entities"

type CreateTeamDTO struct {
	Name           string   `json:"name" validate:"required"`
	Specialization *string  `json:"specialization,omitempty"`
	Members        []string `json:"members,omitempty"`
}

type TeamDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Members        []string `json:"members"`
	ActiveRequests uint64   `json:"active_requests"`
	CreatedAt      string   `json:"created_at"`
}

func NewTeamDTO(e entities.Team, activeRequests uint64) TeamDTO {
	members := e.Members
	if members == nil {
		members = []string{}
	}
	return TeamDTO{
		ID:             e.ID,
		Name:           e.Name,
		Specialization: e.Specialization,
		Members:        members,
		ActiveRequests: activeRequests,
		CreatedAt:      e.CreatedAt.Local().Format(dtoTimeLayout),
	}
}
