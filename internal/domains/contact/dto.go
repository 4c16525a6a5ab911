package contact

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// emailPattern is intentionally loose: local@domain.tld with no
// whitespace. It matches the client-side check so both sides reject
// the same inputs.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmitRequest is a contact form submission. All four fields are
// required after trimming.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (r *SubmitRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailPattern).Error("invalid email address"),
		),
		validation.Field(&r.Subject, validation.Required.Error("subject is required")),
		validation.Field(&r.Message, validation.Required.Error("message is required")),
	)
}
