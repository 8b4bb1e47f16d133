package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContentType enumerates the learning-resource kinds the library accepts.
type ContentType string

// Content types. Document and PDF are distinct in storage but share one
// bucket in the UI-facing summary counts.
const (
	ContentVideo    ContentType = "video"
	ContentDocument ContentType = "document"
	ContentPDF      ContentType = "pdf"
	ContentWebsite  ContentType = "website"
)

// ValidContentType reports whether t is one of the known content types.
func ValidContentType(t ContentType) bool {
	switch t {
	case ContentVideo, ContentDocument, ContentPDF, ContentWebsite:
		return true
	}
	return false
}

// NewContentItem is the in-progress form for adding a library item.
// Department and role tags are sets toggled by the form.
type NewContentItem struct {
	Title       string      `json:"title" validate:"required,min=1"`
	Description string      `json:"description,omitempty"`
	Type        ContentType `json:"type" validate:"required,oneof=video document pdf website"`
	URL         string      `json:"url" validate:"required,min=1"`
	Departments []string    `json:"departments,omitempty"`
	Roles       []string    `json:"roles,omitempty"`
}

// Validate validates the NewContentItem using the validator.
func (n *NewContentItem) Validate() error {
	validate := validator.New()
	return validate.Struct(n)
}

// ContentItem is a stored library resource. IDs are unique for the
// session and never reused; AddedAt orders the most-recent-first listing.
type ContentItem struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Type        ContentType `json:"type"`
	URL         string      `json:"url"`
	Departments []string    `json:"departments"`
	Roles       []string    `json:"roles"`
	AddedAt     time.Time   `json:"added_at"`
}

// ContentSummary partitions the library by category. Total always equals
// Videos + Documents + Websites; documents and pdfs are counted together.
type ContentSummary struct {
	Total     int `json:"total"`
	Videos    int `json:"videos"`
	Documents int `json:"documents"`
	Websites  int `json:"websites"`
}
