package models

import "time"

// Section is a titled block of copy used by blog applications, challenges
// and similar list fields.
type Section struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Spec is a single name/value row in a specifications table.
type Spec struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Blog is one article on the marketing site. The slice fields are stored as
// JSONB documents.
type Blog struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	BgImage         string    `json:"bgImage"`
	Image           string    `json:"image"`
	PublishDate     string    `json:"publishDate"`
	Overview        string    `json:"overview"`
	Description     string    `json:"description,omitempty"`
	Application     []Section `json:"application,omitempty"`
	Challenges      []Section `json:"challenges,omitempty"`
	Applications    []Section `json:"applications,omitempty"`
	Specifications  []Spec    `json:"specifications,omitempty"`
	Images          []string  `json:"images,omitempty"`
	TotalUsers      int       `json:"totalUsers"`
	IsPublished     bool      `json:"isPublished"`
	Featured        bool      `json:"featured"`
	MetaTitle       string    `json:"metaTitle,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
