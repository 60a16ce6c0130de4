package model

// StatusResponse is the uniform body for failures and message-only successes.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MenuResponse struct {
	Success bool  `json:"success"`
	Menu    *Menu `json:"menu,omitempty"`
}

type VendorsResponse struct {
	Success bool        `json:"success"`
	Vendors []VendorRef `json:"vendors"`
}
