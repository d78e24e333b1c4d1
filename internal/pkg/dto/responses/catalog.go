package responses

import "time"

type Medicine struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	GenericName  string    `json:"genericName,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	Category     string    `json:"category,omitempty"`
	Form         string    `json:"form,omitempty"`
	Strength     string    `json:"strength,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Hospital struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Type        string    `json:"type,omitempty"`
	Specialties []string  `json:"specialties"`
	Beds        int       `json:"beds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CatalogPage is the cached shape of one catalog listing.
type CatalogPage[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}
