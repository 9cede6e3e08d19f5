package domain

import "time"

// Invoice statuses. There is no state machine here; status transitions are a
// presentation concern and the backend only stores the current value.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// Invoice is a tenant-scoped billing record. Every query touching invoices
// must carry a business_id predicate.
type Invoice struct {
	ID           string
	BusinessID   string
	CustomerName string
	Number       string
	AmountCents  int64
	Currency     string
	Status       string
	IssuedAt     time.Time
	DueAt        *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expense is a tenant-scoped cost record.
type Expense struct {
	ID          string
	BusinessID  string
	Category    string
	Description string
	AmountCents int64
	IncurredAt  time.Time
	CreatedAt   time.Time
}
