package client

import "time"

// Role selects one of the two account kinds a session can belong to.
type Role string

const (
	RoleStudent Role = "student"
	RoleVendor  Role = "vendor"
)

func (r Role) valid() bool {
	return r == RoleStudent || r == RoleVendor
}

func (r Role) cookieName() string {
	if r == RoleVendor {
		return "vendor_login_token"
	}
	return "student_login_token"
}

func (r Role) routePrefix() string {
	if r == RoleVendor {
		return "/api/Vendor"
	}
	return "/api/Student"
}

// RegisterRequest creates a new account. ContactNumber is required for
// students and ignored for vendors.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contactNumber"`
}

// Profile is the public view of an account as the server returns it.
type Profile struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// Menu is a vendor's published menu.
type Menu struct {
	VendorEmail string     `json:"vendorEmail"`
	VendorName  string     `json:"vendorName"`
	Items       []MenuItem `json:"items"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type MenuItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category,omitempty"`
	Available bool    `json:"available"`
}

// VendorRef identifies a vendor that currently has a published menu.
type VendorRef struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
