package introduction

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpsertRequest replaces the introduction section. The whole record
// travels on every save; last write wins.
type UpsertRequest struct {
	Name        string `json:"name" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
	DiscordURL  string `json:"discord_url"`
	Email       string `json:"email"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&r.GithubURL,
			validation.When(r.GithubURL != "", is.URL.Error("invalid github url")),
		),
		validation.Field(&r.LinkedinURL,
			validation.When(r.LinkedinURL != "", is.URL.Error("invalid linkedin url")),
		),
		validation.Field(&r.DiscordURL,
			validation.When(r.DiscordURL != "", is.URL.Error("invalid discord url")),
		),
	)
}

// ToEntity builds the singleton entity from the request.
func (r UpsertRequest) ToEntity() *Introduction {
	now := time.Now()
	return &Introduction{
		ID:          SingletonID,
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		AvatarURL:   r.AvatarURL,
		GithubURL:   r.GithubURL,
		LinkedinURL: r.LinkedinURL,
		DiscordURL:  r.DiscordURL,
		Email:       r.Email,
		UpdatedAt:   now,
	}
}
