package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/docflow/backend/internal/application/document"
)

// PortalHandler serves the self-service surface. Every listing is scoped
// to the authenticated account, never to a caller-supplied ID.
type PortalHandler struct {
	BaseHandler
	orderService     *documentapp.PurchaseOrderService
	billService      *documentapp.VendorBillService
	saleOrderService *documentapp.SaleOrderService
	invoiceService   *documentapp.InvoiceService
}

// NewPortalHandler creates a new PortalHandler
func NewPortalHandler(
	orderService *documentapp.PurchaseOrderService,
	billService *documentapp.VendorBillService,
	saleOrderService *documentapp.SaleOrderService,
	invoiceService *documentapp.InvoiceService,
) *PortalHandler {
	return &PortalHandler{
		orderService:     orderService,
		billService:      billService,
		saleOrderService: saleOrderService,
		invoiceService:   invoiceService,
	}
}

// ListPurchaseOrders returns purchase orders linked to the caller's account
func (h *PortalHandler) ListPurchaseOrders(c *gin.Context) {
	accountID, ok := h.CurrentUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.ListForVendorAccount(c.Request.Context(), accountID, parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, orders)
}

// ListVendorBills returns vendor bills linked to the caller's account
func (h *PortalHandler) ListVendorBills(c *gin.Context) {
	accountID, ok := h.CurrentUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bills, err := h.billService.ListForVendorAccount(c.Request.Context(), accountID, parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, bills)
}

// ListSaleOrders returns sale orders placed by the caller's account
func (h *PortalHandler) ListSaleOrders(c *gin.Context) {
	accountID, ok := h.CurrentUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.saleOrderService.ListForCustomerAccount(c.Request.Context(), accountID, parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, orders)
}

// ListInvoices returns invoices billed to the caller's account
func (h *PortalHandler) ListInvoices(c *gin.Context) {
	accountID, ok := h.CurrentUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoices, err := h.invoiceService.ListForCustomerAccount(c.Request.Context(), accountID, parseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoices)
}
