package experience

import (
	"time"
)

// WorkExperience is one entry of the work history timeline.
// EndDate nil means the position is current.
type WorkExperience struct {
	ID           int64      `json:"id"`
	Company      string     `json:"company"`
	Role         string     `json:"role"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
