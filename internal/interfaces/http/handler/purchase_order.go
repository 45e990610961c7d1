package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	documentapp "github.com/docflow/backend/internal/application/document"
	"github.com/docflow/backend/internal/domain/identity"
)

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService *documentapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *documentapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// Create creates a draft purchase order. Portal callers get an order in
// the portal series tagged with their account.
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req documentapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var createdBy *uuid.UUID
	if h.CurrentRole(c) == string(identity.RolePortal) {
		userID, ok := h.CurrentUserID(c)
		if !ok {
			h.Unauthorized(c, "Authentication required")
			return
		}
		createdBy = &userID
	}

	order, err := h.orderService.Create(c.Request.Context(), req, createdBy)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, order)
}

// GetByID returns a single purchase order with its lines
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, order)
}

// List returns purchase orders matching the query filter
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, orders)
}

// PurchaseOrderCountsResponse represents order counts grouped by status
type PurchaseOrderCountsResponse struct {
	Draft     int64 `json:"draft"`
	Sent      int64 `json:"sent"`
	Received  int64 `json:"received"`
	Cancelled int64 `json:"cancelled"`
	Confirmed int64 `json:"confirmed"`
	Total     int64 `json:"total"`
}

// CountByStatus returns purchase order counts grouped by status
func (h *PurchaseOrderHandler) CountByStatus(c *gin.Context) {
	counts, err := h.orderService.CountByStatus(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, PurchaseOrderCountsResponse{
		Draft:     counts["draft"],
		Sent:      counts["sent"],
		Received:  counts["received"],
		Cancelled: counts["cancelled"],
		Confirmed: counts["confirmed"],
		Total:     counts["total"],
	})
}

// Update modifies a draft purchase order
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, order)
}

// Transition requests a status change. Disallowed transitions leave the
// order untouched and echo its current state.
func (h *PurchaseOrderHandler) Transition(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.TransitionPurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, order)
}

// Accept marks a sent order as received and generates its confirmed
// vendor bill. Portal callers may only accept orders addressed to their
// own account.
func (h *PurchaseOrderHandler) Accept(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.AcceptPurchaseOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	var vendorAccountID *uuid.UUID
	if h.CurrentRole(c) == string(identity.RolePortal) {
		userID, ok := h.CurrentUserID(c)
		if !ok {
			h.Unauthorized(c, "Authentication required")
			return
		}
		vendorAccountID = &userID
	}

	bill, err := h.orderService.AcceptAndBill(c.Request.Context(), id, req, vendorAccountID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, bill)
}

// CreateBill derives a draft vendor bill from the order, numbered from
// the calendar-year series. The order itself is left untouched.
func (h *PurchaseOrderHandler) CreateBill(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.CreateBillFromOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	bill, err := h.orderService.CreateBill(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, bill)
}

// Archive soft-deletes a purchase order
func (h *PurchaseOrderHandler) Archive(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.Archive(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
