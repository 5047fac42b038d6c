package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/dashbill/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/dashbill/invoice_dashboard_app/internal/models"
	"github.com/dashbill/invoice_dashboard_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

// ListCustomers retrieves all customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, image_url
		FROM customers
		ORDER BY name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		var imageURL sql.NullString
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Email, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		c.ImageURL = imageURL.String
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading customer rows: %w", err)
	}

	return mapping.ToDomainCustomerSlice(customers), nil
}
