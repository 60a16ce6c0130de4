package model

import "time"

// Menu is a vendor's published menu. Each vendor owns at most one menu row;
// saving again replaces the item list in place.
type Menu struct {
	VendorID    string     `json:"-"`
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
