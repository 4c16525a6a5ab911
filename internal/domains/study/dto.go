package study

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertRequest creates or replaces one education entry.
type UpsertRequest struct {
	ID          int64      `json:"id"`
	Institution string     `json:"institution" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	Field       string     `json:"field"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Institution,
			validation.Required.Error("institution is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Degree,
			validation.Required.Error("degree is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Field, validation.Length(0, 255)),
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

func (r UpsertRequest) ToEntity() *Study {
	return &Study{
		ID:          r.ID,
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		UpdatedAt:   time.Now(),
	}
}
