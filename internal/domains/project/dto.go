package project

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"portfolio-backend/internal/shared/utils"
)

// CreateRequest creates a project. Slug defaults to the slugified
// title when not supplied.
type CreateRequest struct {
	Title        string     `json:"title" binding:"required"`
	Slug         string     `json:"slug"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content"`
	VideoURL     string     `json:"video_url"`
	Technologies []string   `json:"technologies"`
	Tag          string     `json:"tag"`
	Link         string     `json:"link"`
	Featured     bool       `json:"featured"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at"`

	UserID uuid.UUID `json:"-"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Slug, validation.Length(0, 255)),
		validation.Field(&r.Summary, validation.Length(0, 1000)),
		validation.Field(&r.VideoURL,
			validation.When(r.VideoURL != "", is.URL.Error("video_url must be a valid URL")),
		),
		validation.Field(&r.Link,
			validation.When(r.Link != "", is.URL.Error("link must be a valid URL")),
		),
		validation.Field(&r.Status,
			validation.By(func(interface{}) error {
				if r.Status != "" && !ValidStatus(r.Status) {
					return validation.NewError("validation_status", "status must be draft, published or archived")
				}
				return nil
			}),
		),
	)
}

func (r CreateRequest) ToEntity() *Project {
	now := time.Now()

	slug := r.Slug
	if slug == "" {
		slug = utils.GenerateSlug(r.Title)
	}

	status := r.Status
	if status == "" {
		status = StatusDraft
	}

	publishedAt := r.PublishedAt
	if publishedAt == nil && status == StatusPublished {
		publishedAt = &now
	}

	entity := &Project{
		UserID:       r.UserID,
		Slug:         slug,
		Title:        r.Title,
		Summary:      r.Summary,
		Content:      r.Content,
		VideoURL:     r.VideoURL,
		Technologies: r.Technologies,
		Tag:          r.Tag,
		Link:         r.Link,
		Featured:     r.Featured,
		Status:       status,
		PublishedAt:  publishedAt,
		UpdatedAt:    now,
	}
	entity.NormalizeImages()

	return entity
}

// UpdateRequest replaces the editable fields of an existing project.
// The gallery is managed through the image upload endpoint and is not
// part of this payload.
type UpdateRequest struct {
	Title        string     `json:"title" binding:"required"`
	Slug         string     `json:"slug"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content"`
	VideoURL     string     `json:"video_url"`
	Technologies []string   `json:"technologies"`
	Tag          string     `json:"tag"`
	Link         string     `json:"link"`
	Featured     bool       `json:"featured"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Slug, validation.Length(0, 255)),
		validation.Field(&r.Summary, validation.Length(0, 1000)),
		validation.Field(&r.VideoURL,
			validation.When(r.VideoURL != "", is.URL.Error("video_url must be a valid URL")),
		),
		validation.Field(&r.Link,
			validation.When(r.Link != "", is.URL.Error("link must be a valid URL")),
		),
		validation.Field(&r.Status,
			validation.By(func(interface{}) error {
				if r.Status != "" && !ValidStatus(r.Status) {
					return validation.NewError("validation_status", "status must be draft, published or archived")
				}
				return nil
			}),
		),
	)
}

// Apply copies the request onto the stored entity, preserving fields
// the payload does not own (id, owner, gallery, created_at).
func (r UpdateRequest) Apply(entity *Project) {
	entity.Title = r.Title
	if r.Slug != "" {
		entity.Slug = r.Slug
	}
	entity.Summary = r.Summary
	entity.Content = r.Content
	entity.VideoURL = r.VideoURL
	entity.Technologies = r.Technologies
	entity.Tag = r.Tag
	entity.Link = r.Link
	entity.Featured = r.Featured

	if r.Status != "" {
		entity.Status = r.Status
	}
	entity.PublishedAt = r.PublishedAt
	if entity.PublishedAt == nil && entity.Status == StatusPublished {
		now := time.Now()
		entity.PublishedAt = &now
	}

	entity.UpdatedAt = time.Now()
}
