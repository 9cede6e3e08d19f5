package domain

import "time"

// Business is the tenant every data operation is scoped to.
type Business struct {
	ID           string
	OwnerID      string
	Name         string
	LegalName    string
	ContactEmail string
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
