package model

import "time"

// Role tags which of the two account collections a record (or token) belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleVendor  Role = "vendor"
)

// JSONKey is the top-level response key carrying the profile for this role.
func (r Role) JSONKey() string {
	return string(r)
}

// CookieName is the auth cookie the role's session token travels in.
func (r Role) CookieName() string {
	switch r {
	case RoleVendor:
		return "vendor_login_token"
	default:
		return "student_login_token"
	}
}

// RoutePrefix is the API mount point for the role's account routes.
func (r Role) RoutePrefix() string {
	switch r {
	case RoleVendor:
		return "/api/Vendor"
	default:
		return "/api/Student"
	}
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleVendor
}

// Account is a stored credential record. ContactNumber is populated for
// students only; vendor rows leave it empty.
type Account struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	ContactNumber string    `json:"contact_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Profile is the public view of an account, safe to return to clients.
type Profile struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// Profile strips the credential fields from an account.
func (a Account) Profile() Profile {
	return Profile{Name: a.Name, Email: a.Email, ContactNumber: a.ContactNumber}
}

// SessionClaims is the decoded content of a session token.
type SessionClaims struct {
	UserID string
	Role   Role
}

// VendorRef identifies a vendor that currently has a published menu.
type VendorRef struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
