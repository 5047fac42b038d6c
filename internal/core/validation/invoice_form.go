// Package validation checks untrusted invoice form input and normalizes it
// into the shape the services persist. Rules are explicit per-field functions;
// identity and creation date are system-assigned and never part of the form.
package validation

import (
	"strings"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	"github.com/dashbill/invoice_dashboard_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// User-facing messages, keyed by the form field that produced them.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// idCheck validates identifier shape (customer references are UUIDs).
var idCheck = validator.New()

// ValidatedInvoice is the normalized result of a successful validation pass.
// The amount has already been converted to minor currency units.
type ValidatedInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      domain.InvoiceStatus
}

// ValidateInvoiceForm checks each field of the submitted form against its rule.
// It returns either the normalized invoice or the per-field error messages;
// never both. Validation is all-or-nothing: any violation means nothing is
// persisted by the caller.
func ValidateInvoiceForm(form dto.InvoiceFormData) (*ValidatedInvoice, dto.FieldErrors) {
	errs := dto.FieldErrors{}

	if err := idCheck.Var(form.CustomerID, "required,uuid"); err != nil {
		errs["customerId"] = append(errs["customerId"], MsgSelectCustomer)
	}

	amountCents, ok := parseAmountCents(form.Amount)
	if !ok {
		errs["amount"] = append(errs["amount"], MsgAmountTooSmall)
	}

	status := domain.InvoiceStatus(form.Status)
	if !status.IsValid() {
		errs["status"] = append(errs["status"], MsgSelectStatus)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ValidatedInvoice{
		CustomerID:  form.CustomerID,
		AmountCents: amountCents,
		Status:      status,
	}, nil
}

// parseAmountCents coerces the human-entered amount to minor units
// (value x 100, rounded to the nearest integer). Decimal arithmetic keeps the
// conversion exact; values that do not survive as a positive integer number of
// cents are rejected.
func parseAmountCents(raw string) (int64, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return 0, false
	}
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, false
	}
	return cents, true
}
