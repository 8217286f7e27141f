package models

import "time"

// ProductCategory pairs the stored category value with the display label the
// website's category picker shows.
type ProductCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProductCategories enumerates the categories a product may belong to.
var ProductCategories = []ProductCategory{
	{Value: "synthetic-fibre", Label: "Synthetic Fibre"},
	{Value: "glass-fibre", Label: "Glass Fibre"},
	{Value: "steel-fibre", Label: "Steel Fibre"},
	{Value: "cellulose-fibre", Label: "Cellulose Fibre"},
	{Value: "anti-stripping", Label: "Anti Stripping Agent"},
	{Value: "silica-fume", Label: "Silica Fume"},
}

// ValidProductCategory reports whether c is one of ProductCategories.
func ValidProductCategory(c string) bool {
	for _, v := range ProductCategories {
		if v.Value == c {
			return true
		}
	}
	return false
}

// Product is one product listing. Slice fields live in JSONB columns.
type Product struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	BgImage         string    `json:"bgImage"`
	Description     string    `json:"description"`
	ExtraLine       string    `json:"extraLine,omitempty"`
	LogoImg         []string  `json:"logoImg,omitempty"`
	Overview        string    `json:"overview"`
	ExtraImg        string    `json:"extraImg,omitempty"`
	Specifications  []Spec    `json:"specifications,omitempty"`
	Advantages      []string  `json:"advantages,omitempty"`
	Application     []string  `json:"application,omitempty"`
	KeyFeatures     []string  `json:"keyFeatures,omitempty"`
	PdfURL          string    `json:"pdfURL,omitempty"`
	Features        []Spec    `json:"features,omitempty"`
	Images          []string  `json:"images,omitempty"`
	Storage         string    `json:"storage,omitempty"`
	IsActive        bool      `json:"isActive"`
	Featured        bool      `json:"featured"`
	Category        string    `json:"category"`
	MetaTitle       string    `json:"metaTitle,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
