package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/docflow/backend/internal/application/document"
)

// InvoiceHandler handles customer invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *documentapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *documentapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// GetByID returns a single invoice with its lines
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoice)
}

// List returns invoices matching the query filter
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoices)
}

// ListForOrder returns the invoices generated from a sale order
func (h *InvoiceHandler) ListForOrder(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListForSourceOrder(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoices)
}

// RegisterPayment records a payment against the invoice
func (h *InvoiceHandler) RegisterPayment(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.RegisterPayment(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoice)
}

// Archive soft-deletes an invoice
func (h *InvoiceHandler) Archive(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.Archive(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
