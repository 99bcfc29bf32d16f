package entities

import "time"

// Request is a maintenance request. Status moves only along the transition
// table in pkg/constants; Repaired and Scrap are terminal. Created,
// transitioned and updated exclusively through the request service.
type Request struct {
	ID            string    `json:"id" db:"id"`
	Subject       string    `json:"subject" db:"subject"`
	Status        string    `json:"status" db:"status"`
	EquipmentID   string    `json:"equipment_id" db:"equipment_id"`
	TeamID        string    `json:"team_id" db:"team_id"`
	Type          string    `json:"type" db:"type"`
	Priority      string    `json:"priority" db:"priority"`
	ScheduledDate time.Time `json:"scheduled_date" db:"scheduled_date"`
	AssignedTo    string    `json:"assigned_to" db:"assigned_to"`
	Description   string    `json:"description" db:"description"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
