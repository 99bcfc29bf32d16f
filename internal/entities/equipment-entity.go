package entities

import "time"

// Equipment is a tracked physical asset. MaintenanceCount and IsScrap belong
// to the request lifecycle: the counter only moves when a request is created
// against the asset, and the scrap flag gates new requests.
type Equipment struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	SerialNumber     string    `json:"serial_number" db:"serial_number"`
	Category         string    `json:"category" db:"category"`
	Department       string    `json:"department" db:"department"`
	TeamID           string    `json:"team_id" db:"team_id"`
	Location         string    `json:"location" db:"location"`
	Condition        string    `json:"condition" db:"condition"`
	HealthScore      int       `json:"health_score" db:"health_score"`
	IsScrap          bool      `json:"is_scrap" db:"is_scrap"`
	MaintenanceCount int       `json:"maintenance_count" db:"maintenance_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
