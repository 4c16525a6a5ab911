package skill

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// UpsertRequest creates or replaces one skill. UserID is filled from
// the authenticated caller, never from the body.
type UpsertRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Level    int    `json:"level" binding:"required"`

	UserID uuid.UUID `json:"-"`
}

// Validate checks every field before the store is touched; an
// invalid skill never reaches the repository.
func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Level,
			validation.Required.Error("level is required"),
			validation.Min(1).Error("level must be between 1 and 10"),
			validation.Max(10).Error("level must be between 1 and 10"),
		),
		validation.Field(&r.UserID,
			validation.By(func(interface{}) error {
				if r.UserID == uuid.Nil {
					return validation.NewError("validation_user_id", "user_id is required")
				}
				return nil
			}),
		),
	)
}

func (r UpsertRequest) ToEntity() *TechnicalSkill {
	return &TechnicalSkill{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Category:  r.Category,
		Level:     r.Level,
		UpdatedAt: time.Now(),
	}
}
