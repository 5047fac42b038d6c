package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dashbill/invoice_dashboard_app/internal/apperrors"
	portssvc "github.com/dashbill/invoice_dashboard_app/internal/core/ports/services"
	"github.com/dashbill/invoice_dashboard_app/internal/dto"
	"github.com/dashbill/invoice_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	navigator      Navigator
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade, nav Navigator) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		navigator:      nav,
	}
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, navigator Navigator) {
	h := newInvoiceHandler(invoiceService, navigator)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.POST("/:invoiceID", h.updateInvoice)
		invoices.POST("/:invoiceID/delete", h.deleteInvoice)
	}
}

// extractInvoiceForm reads the raw string values of the consumed form fields.
// Absent fields come back as empty strings and are left for validation to
// reject.
func extractInvoiceForm(c *gin.Context) dto.InvoiceFormData {
	return dto.InvoiceFormData{
		CustomerID: c.PostForm("customerId"),
		Amount:     c.PostForm("amount"),
		Status:     c.PostForm("status"),
	}
}

// stateStatus maps a non-success operation state to its HTTP status:
// field errors mean the form was unprocessable, a bare message means the
// database write failed.
func stateStatus(state *dto.InvoiceState) int {
	if len(state.Errors) > 0 {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Validates the submitted invoice form and inserts the invoice. Redirects to the listing view on success.
// @Tags invoices
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   customerId formData string true "Customer ID (UUID)"
// @Param   amount formData string true "Amount in major currency units, e.g. 10.50"
// @Param   status formData string true "Invoice status" Enums(pending, paid)
// @Success 303 {string} string "Redirect to /dashboard/invoices"
// @Failure 422 {object} dto.InvoiceState "Validation errors"
// @Failure 500 {object} dto.InvoiceState "Database error"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	form := extractInvoiceForm(c)

	if state := h.invoiceService.CreateInvoice(c.Request.Context(), form); state != nil {
		c.JSON(stateStatus(state), state)
		return
	}

	h.navigator.Redirect(c, portssvc.ListingViewPath)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Validates the submitted invoice form and rewrites the invoice's mutable fields. Redirects to the listing view on success.
// @Tags invoices
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Param   customerId formData string true "Customer ID (UUID)"
// @Param   amount formData string true "Amount in major currency units"
// @Param   status formData string true "Invoice status" Enums(pending, paid)
// @Success 303 {string} string "Redirect to /dashboard/invoices"
// @Failure 422 {object} dto.InvoiceState "Validation errors"
// @Failure 500 {object} dto.InvoiceState "Database error"
// @Router /invoices/{invoiceID} [post]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	invoiceID := c.Param("invoiceID")
	form := extractInvoiceForm(c)

	if state := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, form); state != nil {
		c.JSON(stateStatus(state), state)
		return
	}

	h.navigator.Redirect(c, portssvc.ListingViewPath)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Removes the invoice. Always succeeds from the caller's point of view; the listing cache is invalidated and the caller re-renders in place.
// @Tags invoices
// @Param   invoiceID path string true "Invoice ID"
// @Success 204 {string} string "No Content"
// @Router /invoices/{invoiceID}/delete [post]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	invoiceID := c.Param("invoiceID")

	h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID)

	c.Status(http.StatusNoContent)
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves a single invoice, used to populate the edit form
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves the invoice listing view (invoices joined with their customers, newest first). The default page is served from the rendered-view cache when warm.
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
