package models

import "time"

// Contact statuses, in the order a submission normally moves through them.
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in-progress"
	ContactStatusResolved   = "resolved"
	ContactStatusClosed     = "closed"
)

// Contact priorities.
const (
	ContactPriorityLow    = "low"
	ContactPriorityMedium = "medium"
	ContactPriorityHigh   = "high"
	ContactPriorityUrgent = "urgent"
)

// ValidContactStatus reports whether s is a recognized status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved, ContactStatusClosed:
		return true
	}
	return false
}

// ValidContactPriority reports whether p is a recognized priority.
func ValidContactPriority(p string) bool {
	switch p {
	case ContactPriorityLow, ContactPriorityMedium, ContactPriorityHigh, ContactPriorityUrgent:
		return true
	}
	return false
}

// Contact is one contact-form submission.
type Contact struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company,omitempty"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  *string    `json:"assignedTo"`
	Response    string     `json:"response,omitempty"`
	RespondedAt *time.Time `json:"respondedAt"`
	Source      string     `json:"source"`
	IPAddress   string     `json:"ipAddress,omitempty"`
	UserAgent   string     `json:"userAgent,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
