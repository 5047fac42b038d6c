package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dashbill/invoice_dashboard_app/internal/apperrors"
	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/dashbill/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/dashbill/invoice_dashboard_app/internal/models"
	"github.com/dashbill/invoice_dashboard_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts a new invoice row. The identifier and date must already
// be assigned by the caller; the statement never generates either.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (invoice_id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.CustomerID,
		modelInv.AmountCents,
		modelInv.Status,
		modelInv.Date,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: invoice with ID %s already exists", apperrors.ErrDuplicate, modelInv.InvoiceID)
			case "23503": // Foreign key violation (unknown customer)
				return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, modelInv.CustomerID)
			}
		}
		return fmt.Errorf("failed to save invoice %s: %w", modelInv.InvoiceID, err)
	}
	return nil
}

// UpdateInvoice rewrites the mutable columns of the row matching the invoice
// ID. The date column is deliberately absent from the statement. Zero rows
// affected means the id matched nothing; per the operation contract that is
// indistinguishable from success.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)

	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE invoice_id = $4;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelInv.CustomerID,
		modelInv.AmountCents,
		modelInv.Status,
		modelInv.InvoiceID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, modelInv.CustomerID)
		}
		return fmt.Errorf("failed to update invoice %s: %w", modelInv.InvoiceID, err)
	}
	return nil
}

// DeleteInvoice removes the row matching invoiceID. Zero rows affected is not
// an error, which makes the operation idempotent.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	query := `
		DELETE FROM invoices
		WHERE invoice_id = $1;
	`

	_, err := r.Pool.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, customer_id, amount, status, date
		FROM invoices
		WHERE invoice_id = $1;
	`

	var modelInv models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&modelInv.InvoiceID,
		&modelInv.CustomerID,
		&modelInv.AmountCents,
		&modelInv.Status,
		&modelInv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	return &domainInv, nil
}

// ListInvoicesWithCustomer retrieves a page of the listing view, newest first.
func (r *PgxInvoiceRepository) ListInvoicesWithCustomer(ctx context.Context, limit int, offset int) ([]domain.InvoiceWithCustomer, error) {
	query := `
		SELECT i.invoice_id, i.customer_id, i.amount, i.status, i.date,
		       c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.customer_id = i.customer_id
		ORDER BY i.date DESC, i.invoice_id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var result []domain.InvoiceWithCustomer
	for rows.Next() {
		var modelInv models.Invoice
		var name, email string
		var imageURL sql.NullString

		if err := rows.Scan(
			&modelInv.InvoiceID,
			&modelInv.CustomerID,
			&modelInv.AmountCents,
			&modelInv.Status,
			&modelInv.Date,
			&name,
			&email,
			&imageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}

		result = append(result, domain.InvoiceWithCustomer{
			Invoice:          mapping.ToDomainInvoice(modelInv),
			CustomerName:     name,
			CustomerEmail:    email,
			CustomerImageURL: imageURL.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading invoice rows: %w", err)
	}

	return result, nil
}
