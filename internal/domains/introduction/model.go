package introduction

import (
	"time"
)

// SingletonID is the fixed row id of the introduction record. The
// section is a singleton: every upsert targets this id.
const SingletonID = 1

// Introduction is the hero section of the portfolio: who the owner
// is, what they do, and where to find them.
type Introduction struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AvatarURL   string    `json:"avatar_url"`
	GithubURL   string    `json:"github_url"`
	LinkedinURL string    `json:"linkedin_url"`
	DiscordURL  string    `json:"discord_url"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
