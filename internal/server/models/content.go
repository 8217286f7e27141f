package models

import (
	"encoding/json"
	"time"
)

// Content statuses.
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// Page types a content block may belong to.
var ContentPageTypes = []string{"home", "about", "products", "blogs", "clients", "contact", "other"}

// ValidContentPageType reports whether p is a recognized page type.
func ValidContentPageType(p string) bool {
	for _, v := range ContentPageTypes {
		if v == p {
			return true
		}
	}
	return false
}

// ValidContentStatus reports whether s is a recognized status.
func ValidContentStatus(s string) bool {
	switch s {
	case ContentStatusDraft, ContentStatusPublished, ContentStatusArchived:
		return true
	}
	return false
}

// ContentImage is one image attached to a content block.
type ContentImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Content is a generic page-content block keyed by (section, pageType).
// Body and Metadata are free-form JSON documents; the API passes them
// through untouched.
type Content struct {
	ID        string          `json:"id"`
	PageType  string          `json:"pageType"`
	Section   string          `json:"section"`
	Title     string          `json:"title"`
	Body      json.RawMessage `json:"content"`
	Images    []ContentImage  `json:"images,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Status    string          `json:"status"`
	Order     int             `json:"order"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
