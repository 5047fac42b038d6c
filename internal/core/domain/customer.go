package domain

// Customer represents a billable customer an invoice is raised against.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"imageURL"` // Nullable avatar URL shown in the dashboard
}
