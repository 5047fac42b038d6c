package models

import "time"

// InvoiceStatus mirrors domain.InvoiceStatus for storage.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice is the database representation of an invoice row.
type Invoice struct {
	InvoiceID   string        `db:"invoice_id"`
	CustomerID  string        `db:"customer_id"`
	AmountCents int64         `db:"amount"` // minor currency units
	Status      InvoiceStatus `db:"status"`
	Date        time.Time     `db:"date"` // date column, no time component
}
