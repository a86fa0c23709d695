// internal/models/company.go
package models

// Company is an employer's public profile, edited through the company
// profile form and fetched as a single-entity detail.
type Company struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Logo        string `json:"logo,omitempty"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}
