package project

import (
	"time"

	"github.com/google/uuid"
)

// Publication states. Only published projects are visible to
// anonymous visitors.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ImageSlots is the fixed number of gallery images per project:
// slot 0 and slot 1.
const ImageSlots = 2

type Project struct {
	ID           int64      `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content"`
	Images       []string   `json:"images"`
	VideoURL     string     `json:"video_url,omitempty"`
	Technologies []string   `json:"technologies"`
	Tag          string     `json:"tag,omitempty"`
	Link         string     `json:"link,omitempty"`
	Featured     bool       `json:"featured"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (p *Project) IsPublished() bool {
	return p.Status == StatusPublished
}

// NormalizeImages pads or truncates the gallery to exactly ImageSlots
// entries so index writes are always in range.
func (p *Project) NormalizeImages() {
	images := make([]string, ImageSlots)
	copy(images, p.Images)
	p.Images = images
}

// SetImage stores a public URL in one gallery slot.
func (p *Project) SetImage(index int, url string) {
	p.NormalizeImages()
	p.Images[index] = url
}

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
