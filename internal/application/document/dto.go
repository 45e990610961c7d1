package document

import (
	"time"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Line DTOs ====================

// DocumentLinesForm carries line items as parallel arrays, the way the
// order forms submit them. The product name array drives alignment;
// missing or malformed quantities and prices default to zero.
type DocumentLinesForm struct {
	ProductNames []string `json:"product_name" form:"product_name[]"`
	AnalyticTags []string `json:"budget_analytics" form:"budget_analytics[]"`
	Quantities   []string `json:"quantity" form:"quantity[]"`
	UnitPrices   []string `json:"unit_price" form:"unit_price[]"`
}

// Parse converts the form arrays into aligned line inputs
func (f DocumentLinesForm) Parse() []document.LineInput {
	return document.ParseLineInputs(f.ProductNames, f.AnalyticTags, f.Quantities, f.UnitPrices)
}

// DocumentLineResponse represents a line item in API responses
type DocumentLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	AnalyticTag string          `json:"budget_analytics,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// ==================== Purchase Order DTOs ====================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	VendorName string            `json:"vendor_name" binding:"required,min=1,max=200"`
	Reference  string            `json:"reference" binding:"max=100"`
	OrderDate  *time.Time        `json:"order_date"`
	Notes      string            `json:"notes"`
	Lines      DocumentLinesForm `json:"lines"`
}

// UpdatePurchaseOrderRequest represents a request to update a draft purchase order
type UpdatePurchaseOrderRequest struct {
	VendorName *string            `json:"vendor_name"`
	Reference  *string            `json:"reference"`
	OrderDate  *time.Time         `json:"order_date"`
	Notes      *string            `json:"notes"`
	Lines      *DocumentLinesForm `json:"lines"`
}

// TransitionPurchaseOrderRequest carries the requested target status
type TransitionPurchaseOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	Reference       string                 `json:"reference,omitempty"`
	VendorName      string                 `json:"vendor_name"`
	VendorAccountID *uuid.UUID             `json:"vendor_account_id,omitempty"`
	OrderDate       time.Time              `json:"order_date"`
	Lines           []DocumentLineResponse `json:"lines"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Version         int                    `json:"version"`
}

// ToPurchaseOrderResponse converts a domain purchase order to a response DTO
func ToPurchaseOrderResponse(order *document.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]DocumentLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, DocumentLineResponse{
			ID:          l.ID,
			ProductName: l.ProductName,
			AnalyticTag: l.AnalyticTag,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return PurchaseOrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Reference:       order.Reference,
		VendorName:      order.VendorName,
		VendorAccountID: order.VendorAccountID,
		OrderDate:       order.OrderDate,
		Lines:           lines,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.String(),
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		Version:         order.Version,
	}
}

// ToPurchaseOrderResponses converts a slice of purchase orders
func ToPurchaseOrderResponses(orders []document.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToPurchaseOrderResponse(&orders[i]))
	}
	return responses
}

// ==================== Vendor Bill DTOs ====================

// CreateVendorBillRequest represents a request to create a standalone vendor bill
type CreateVendorBillRequest struct {
	VendorName string            `json:"vendor_name" binding:"required,min=1,max=200"`
	Reference  string            `json:"reference" binding:"max=100"`
	BillDate   *time.Time        `json:"bill_date"`
	Lines      DocumentLinesForm `json:"lines"`
}

// UpdateVendorBillRequest represents a request to update a draft vendor bill
type UpdateVendorBillRequest struct {
	Reference *string            `json:"reference"`
	BillDate  *time.Time         `json:"bill_date"`
	Lines     *DocumentLinesForm `json:"lines"`
}

// RegisterPaymentRequest records a payment against a bill or invoice
type RegisterPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// VendorBillResponse represents a vendor bill in API responses
type VendorBillResponse struct {
	ID              uuid.UUID              `json:"id"`
	BillNumber      string                 `json:"bill_number"`
	Reference       string                 `json:"reference,omitempty"`
	VendorName      string                 `json:"vendor_name"`
	VendorAccountID *uuid.UUID             `json:"vendor_account_id,omitempty"`
	SourceOrderID   *uuid.UUID             `json:"source_order_id,omitempty"`
	BillDate        time.Time              `json:"bill_date"`
	Lines           []DocumentLineResponse `json:"lines"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	AmountPaid      decimal.Decimal        `json:"amount_paid"`
	BalanceDue      decimal.Decimal        `json:"balance_due"`
	Status          string                 `json:"status"`
	PaymentStatus   string                 `json:"payment_status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Version         int                    `json:"version"`
}

// ToVendorBillResponse converts a domain vendor bill to a response DTO
func ToVendorBillResponse(bill *document.VendorBill) VendorBillResponse {
	lines := make([]DocumentLineResponse, 0, len(bill.Lines))
	for _, l := range bill.Lines {
		lines = append(lines, DocumentLineResponse{
			ID:          l.ID,
			ProductName: l.ProductName,
			AnalyticTag: l.AnalyticTag,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return VendorBillResponse{
		ID:              bill.ID,
		BillNumber:      bill.BillNumber,
		Reference:       bill.Reference,
		VendorName:      bill.VendorName,
		VendorAccountID: bill.VendorAccountID,
		SourceOrderID:   bill.SourceOrderID,
		BillDate:        bill.BillDate,
		Lines:           lines,
		TotalAmount:     bill.TotalAmount,
		AmountPaid:      bill.AmountPaid,
		BalanceDue:      bill.BalanceDue(),
		Status:          string(bill.Status),
		PaymentStatus:   string(bill.PaymentStatus),
		CreatedAt:       bill.CreatedAt,
		UpdatedAt:       bill.UpdatedAt,
		Version:         bill.Version,
	}
}

// ToVendorBillResponses converts a slice of vendor bills
func ToVendorBillResponses(bills []document.VendorBill) []VendorBillResponse {
	responses := make([]VendorBillResponse, 0, len(bills))
	for i := range bills {
		responses = append(responses, ToVendorBillResponse(&bills[i]))
	}
	return responses
}

// ==================== Sale Order DTOs ====================

// CreateSaleOrderRequest represents a request to create a sale order
type CreateSaleOrderRequest struct {
	CustomerAccountID uuid.UUID         `json:"customer_account_id" binding:"required"`
	CustomerName      string            `json:"customer_name" binding:"required,min=1,max=200"`
	Reference         string            `json:"reference" binding:"max=100"`
	OrderDate         *time.Time        `json:"order_date"`
	Notes             string            `json:"notes"`
	Lines             DocumentLinesForm `json:"lines"`
}

// UpdateSaleOrderRequest represents a request to update a draft sale order
type UpdateSaleOrderRequest struct {
	Reference *string            `json:"reference"`
	OrderDate *time.Time         `json:"order_date"`
	Notes     *string            `json:"notes"`
	Lines     *DocumentLinesForm `json:"lines"`
}

// SaleOrderResponse represents a sale order in API responses
type SaleOrderResponse struct {
	ID                uuid.UUID              `json:"id"`
	OrderNumber       string                 `json:"order_number"`
	Reference         string                 `json:"reference,omitempty"`
	CustomerAccountID uuid.UUID              `json:"customer_account_id"`
	CustomerName      string                 `json:"customer_name"`
	OrderDate         time.Time              `json:"order_date"`
	Lines             []DocumentLineResponse `json:"lines"`
	TotalAmount       decimal.Decimal        `json:"total_amount"`
	Status            string                 `json:"status"`
	SentAt            *time.Time             `json:"sent_at,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	Version           int                    `json:"version"`
}

// ToSaleOrderResponse converts a domain sale order to a response DTO
func ToSaleOrderResponse(order *document.SaleOrder) SaleOrderResponse {
	lines := make([]DocumentLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, DocumentLineResponse{
			ID:          l.ID,
			ProductName: l.ProductName,
			AnalyticTag: l.AnalyticTag,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return SaleOrderResponse{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		Reference:         order.Reference,
		CustomerAccountID: order.CustomerAccountID,
		CustomerName:      order.CustomerName,
		OrderDate:         order.OrderDate,
		Lines:             lines,
		TotalAmount:       order.TotalAmount,
		Status:            string(order.Status),
		SentAt:            order.SentAt,
		Notes:             order.Notes,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
		Version:           order.Version,
	}
}

// ToSaleOrderResponses converts a slice of sale orders
func ToSaleOrderResponses(orders []document.SaleOrder) []SaleOrderResponse {
	responses := make([]SaleOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToSaleOrderResponse(&orders[i]))
	}
	return responses
}

// ==================== Invoice DTOs ====================

// InvoiceResponse represents a customer invoice in API responses. The
// status field reflects the effective status, so an unpaid invoice past
// its due date reads as overdue even though the stored row still says
// sent or partial.
type InvoiceResponse struct {
	ID                uuid.UUID              `json:"id"`
	InvoiceNumber     string                 `json:"invoice_number"`
	CustomerAccountID uuid.UUID              `json:"customer_account_id"`
	CustomerName      string                 `json:"customer_name"`
	SourceOrderID     *uuid.UUID             `json:"source_order_id,omitempty"`
	InvoiceDate       time.Time              `json:"invoice_date"`
	DueDate           time.Time              `json:"due_date"`
	Lines             []DocumentLineResponse `json:"lines"`
	Subtotal          decimal.Decimal        `json:"subtotal"`
	Tax               decimal.Decimal        `json:"tax"`
	TotalAmount       decimal.Decimal        `json:"total_amount"`
	AmountPaid        decimal.Decimal        `json:"amount_paid"`
	BalanceDue        decimal.Decimal        `json:"balance_due"`
	Status            string                 `json:"status"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	Version           int                    `json:"version"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(invoice *document.Invoice, now time.Time) InvoiceResponse {
	lines := make([]DocumentLineResponse, 0, len(invoice.Lines))
	for _, l := range invoice.Lines {
		lines = append(lines, DocumentLineResponse{
			ID:          l.ID,
			ProductName: l.ProductName,
			AnalyticTag: l.AnalyticTag,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return InvoiceResponse{
		ID:                invoice.ID,
		InvoiceNumber:     invoice.InvoiceNumber,
		CustomerAccountID: invoice.CustomerAccountID,
		CustomerName:      invoice.CustomerName,
		SourceOrderID:     invoice.SourceOrderID,
		InvoiceDate:       invoice.InvoiceDate,
		DueDate:           invoice.DueDate,
		Lines:             lines,
		Subtotal:          invoice.Subtotal,
		Tax:               invoice.Tax,
		TotalAmount:       invoice.TotalAmount,
		AmountPaid:        invoice.AmountPaid,
		BalanceDue:        invoice.BalanceDue,
		Status:            string(invoice.EffectiveStatus(now)),
		CreatedAt:         invoice.CreatedAt,
		UpdatedAt:         invoice.UpdatedAt,
		Version:           invoice.Version,
	}
}

// ToInvoiceResponses converts a slice of invoices
func ToInvoiceResponses(invoices []document.Invoice, now time.Time) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i], now))
	}
	return responses
}

// ==================== Send / Conversion DTOs ====================

// SendSaleOrderRequest carries optional invoice terms for sending an order
type SendSaleOrderRequest struct {
	DueDate *time.Time `json:"due_date"`
}

// SendSaleOrderResult carries the order after a send request. Invoice is
// set only when this request performed the send; a repeat request leaves
// it nil and the order as it stands.
type SendSaleOrderResult struct {
	Order   SaleOrderResponse `json:"order"`
	Invoice *InvoiceResponse  `json:"invoice,omitempty"`
}

// AcceptPurchaseOrderRequest carries optional fields for the accept-and-bill flow
type AcceptPurchaseOrderRequest struct {
	BillDate *time.Time `json:"bill_date"`
}

// CreateBillFromOrderRequest carries optional fields for billing a
// purchase order from the back office
type CreateBillFromOrderRequest struct {
	BillDate *time.Time `json:"bill_date"`
}
