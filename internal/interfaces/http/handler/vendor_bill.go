package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/docflow/backend/internal/application/document"
)

// VendorBillHandler handles vendor bill endpoints
type VendorBillHandler struct {
	BaseHandler
	billService *documentapp.VendorBillService
}

// NewVendorBillHandler creates a new VendorBillHandler
func NewVendorBillHandler(billService *documentapp.VendorBillService) *VendorBillHandler {
	return &VendorBillHandler{billService: billService}
}

// Create creates a standalone vendor bill numbered in the year series
func (h *VendorBillHandler) Create(c *gin.Context) {
	var req documentapp.CreateVendorBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, bill)
}

// GetByID returns a single vendor bill with its lines
func (h *VendorBillHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bill)
}

// List returns vendor bills matching the query filter
func (h *VendorBillHandler) List(c *gin.Context) {
	bills, err := h.billService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bills)
}

// ListForOrder returns the bills generated from a purchase order
func (h *VendorBillHandler) ListForOrder(c *gin.Context) {
	orderID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	bills, err := h.billService.ListForSourceOrder(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bills)
}

// Update modifies a draft vendor bill
func (h *VendorBillHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.UpdateVendorBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bill, err := h.billService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bill)
}

// Confirm finalizes a draft bill. Confirming twice is a no-op.
func (h *VendorBillHandler) Confirm(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bill)
}

// RegisterPayment records a payment against the bill
func (h *VendorBillHandler) RegisterPayment(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bill, err := h.billService.RegisterPayment(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bill)
}

// Archive soft-deletes a vendor bill
func (h *VendorBillHandler) Archive(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.billService.Archive(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
