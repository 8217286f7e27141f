package httpapi

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"unicode"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{7,20}$`)
)

// parsePagination reads page/limit query params with defaults of 1 and 10.
// Values out of range are clamped rather than rejected.
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func validEmail(email string) bool { return emailPattern.MatchString(email) }

func validSlug(slug string) bool { return slugPattern.MatchString(slug) }

// validatePassword enforces length 8+ with upper, lower, digit and special.
func validatePassword(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper {
		errs = append(errs, "Password must contain an uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "Password must contain a lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "Password must contain a number")
	}
	if !hasSpecial {
		errs = append(errs, "Password must contain a special character")
	}
	return errs
}

func requireString(errs []string, value, field string, maxLen int) []string {
	if value == "" {
		return append(errs, field+" is required")
	}
	if maxLen > 0 && len(value) > maxLen {
		return append(errs, fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
	return errs
}

func validateContact(c *models.Contact) []string {
	var errs []string
	errs = requireString(errs, c.Name, "Name", 100)
	if c.Email == "" {
		errs = append(errs, "Email is required")
	} else if !validEmail(c.Email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if c.Phone != "" && !phonePattern.MatchString(c.Phone) {
		errs = append(errs, "Please provide a valid phone number")
	}
	if len(c.Company) > 200 {
		errs = append(errs, "Company must be at most 200 characters")
	}
	errs = requireString(errs, c.Subject, "Subject", 200)
	errs = requireString(errs, c.Message, "Message", 2000)
	return errs
}

func validateBlog(b *models.Blog) []string {
	var errs []string
	errs = requireString(errs, b.Name, "Name", 200)
	if b.Slug != "" && !validSlug(b.Slug) {
		errs = append(errs, "Slug must contain only lowercase letters, numbers and hyphens")
	}
	if len(b.MetaTitle) > 60 {
		errs = append(errs, "Meta title must be at most 60 characters")
	}
	if len(b.MetaDescription) > 160 {
		errs = append(errs, "Meta description must be at most 160 characters")
	}
	if b.TotalUsers < 0 {
		errs = append(errs, "Total users must not be negative")
	}
	return errs
}

func validateProduct(p *models.Product) []string {
	var errs []string
	errs = requireString(errs, p.Name, "Name", 200)
	if p.Slug != "" && !validSlug(p.Slug) {
		errs = append(errs, "Slug must contain only lowercase letters, numbers and hyphens")
	}
	if !models.ValidProductCategory(p.Category) {
		errs = append(errs, "Please select a valid category")
	}
	if len(p.MetaTitle) > 60 {
		errs = append(errs, "Meta title must be at most 60 characters")
	}
	if len(p.MetaDescription) > 160 {
		errs = append(errs, "Meta description must be at most 160 characters")
	}
	return errs
}

func validateContent(c *models.Content) []string {
	var errs []string
	errs = requireString(errs, c.Section, "Section", 100)
	if !models.ValidContentPageType(c.PageType) {
		errs = append(errs, "Please select a valid page type")
	}
	if c.Status != "" && !models.ValidContentStatus(c.Status) {
		errs = append(errs, "Please select a valid status")
	}
	return errs
}
