package models

// Customer is the database representation of a customer row.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	ImageURL   string `db:"image_url"` // empty string when NULL
}
