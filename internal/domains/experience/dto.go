package experience

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertRequest creates or replaces one work history entry. ID zero
// inserts a new row; a known ID replaces that row in full.
type UpsertRequest struct {
	ID           int64      `json:"id"`
	Company      string     `json:"company" binding:"required"`
	Role         string     `json:"role" binding:"required"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Company,
			validation.Required.Error("company is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.StartDate, validation.Required.Error("start_date is required")),
		validation.Field(&r.EndDate,
			validation.By(func(interface{}) error {
				if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
					return validation.NewError("validation_end_date", "end_date must not precede start_date")
				}
				return nil
			}),
		),
	)
}

func (r UpsertRequest) ToEntity() *WorkExperience {
	return &WorkExperience{
		ID:           r.ID,
		Company:      r.Company,
		Role:         r.Role,
		Description:  r.Description,
		Technologies: r.Technologies,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		UpdatedAt:    time.Now(),
	}
}
