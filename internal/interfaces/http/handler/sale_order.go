package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/docflow/backend/internal/application/document"
	"github.com/docflow/backend/internal/domain/identity"
)

// SaleOrderHandler handles sale order endpoints
type SaleOrderHandler struct {
	BaseHandler
	orderService *documentapp.SaleOrderService
}

// NewSaleOrderHandler creates a new SaleOrderHandler
func NewSaleOrderHandler(orderService *documentapp.SaleOrderService) *SaleOrderHandler {
	return &SaleOrderHandler{orderService: orderService}
}

// Create creates a draft sale order. Portal callers get an order in the
// portal series.
func (h *SaleOrderHandler) Create(c *gin.Context) {
	var req documentapp.CreateSaleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fromPortal := h.CurrentRole(c) == string(identity.RolePortal)
	order, err := h.orderService.Create(c.Request.Context(), req, fromPortal)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, order)
}

// GetByID returns a single sale order with its lines
func (h *SaleOrderHandler) GetByID(c *gin.Context) {
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

// List returns sale orders matching the query filter
func (h *SaleOrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, orders)
}

// Update modifies a draft sale order
func (h *SaleOrderHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.UpdateSaleOrderRequest
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

// Send marks the order as sent and generates its invoice. Sending an
// already sent order changes nothing and echoes the order.
func (h *SaleOrderHandler) Send(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req documentapp.SendSaleOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	result, err := h.orderService.Send(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	if result.Invoice == nil {
		h.Success(c, result)
		return
	}
	h.Created(c, result)
}

// Archive soft-deletes a sale order
func (h *SaleOrderHandler) Archive(c *gin.Context) {
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
