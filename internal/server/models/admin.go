package models

import "time"

// AdminRole is the single role currently issued. The column is an enum so
// more roles can be added without a schema change.
const AdminRoleAdmin = "admin"

// Admin is the stored representation of an administrator account.
// PasswordHash is a bcrypt hash and must never cross the API boundary.
type Admin struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           string     `json:"role"`
	IsActive       bool       `json:"isActive"`
	LastLoginAt    *time.Time `json:"lastLogin,omitempty"`
	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// IsLocked reports whether the account is administratively locked at the
// given instant. Computed from LockedUntil, never stored.
func (a *Admin) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// AdminSummary is the outward-facing shape of an admin record.
type AdminSummary struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Summary strips everything a client has no business seeing.
func (a *Admin) Summary() *AdminSummary {
	return &AdminSummary{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		LastLogin: a.LastLoginAt,
		CreatedAt: a.CreatedAt,
	}
}
