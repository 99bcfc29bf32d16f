package entities

import "time"

// Team is a maintenance crew. Member order carries no meaning. The active
// request count is derived from the requests collection, never stored.
type Team struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Specialization string    `json:"specialization" db:"specialization"`
	Members        []string  `json:"members" db:"members"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
