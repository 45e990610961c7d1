package document

import (
	"strings"
	"time"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of a customer invoice
type InvoiceStatus string

const (
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	// InvoiceStatusOverdue is never stored; it is derived lazily on read
	// from the due date and payment state
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusSent, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// InvoiceLine represents a line item in an invoice
type InvoiceLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	AnalyticTag string          `gorm:"type:varchar(100)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

// Invoice represents a customer invoice derived from a sale order
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerAccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName      string          `gorm:"type:varchar(200);not null"`
	SourceOrderID     *uuid.UUID      `gorm:"type:uuid;index"`
	InvoiceDate       time.Time       `gorm:"not null"`
	DueDate           time.Time       `gorm:"not null"`
	Lines             []InvoiceLine   `gorm:"foreignKey:InvoiceID;references:ID"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Tax               decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountPaid        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	BalanceDue        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Always TotalAmount - AmountPaid
	Status            InvoiceStatus   `gorm:"type:varchar(20);not null;default:'sent'"`
	Archived          bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new invoice in sent status. The due date defaults
// to the invoice date when not supplied.
func NewInvoice(invoiceNumber string, customerAccountID uuid.UUID, customerName string, invoiceDate, dueDate time.Time) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if customerAccountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer account cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	if dueDate.IsZero() {
		dueDate = invoiceDate
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		CustomerAccountID: customerAccountID,
		CustomerName:      strings.TrimSpace(customerName),
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		Lines:             make([]InvoiceLine, 0),
		Subtotal:          decimal.Zero,
		Tax:               decimal.Zero,
		TotalAmount:       decimal.Zero,
		AmountPaid:        decimal.Zero,
		BalanceDue:        decimal.Zero,
		Status:            InvoiceStatusSent,
	}, nil
}

// CloneLinesFrom copies every sale order line onto this invoice and takes
// over the order's total as subtotal and total (tax is zero)
func (i *Invoice) CloneLinesFrom(order *SaleOrder) {
	now := time.Now()
	lines := make([]InvoiceLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, InvoiceLine{
			ID:          uuid.New(),
			InvoiceID:   i.ID,
			ProductName: l.ProductName,
			AnalyticTag: l.AnalyticTag,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	i.Lines = lines
	i.SourceOrderID = &order.ID
	i.Subtotal = order.TotalAmount
	i.Tax = decimal.Zero
	i.TotalAmount = i.Subtotal.Add(i.Tax)
	i.BalanceDue = i.TotalAmount.Sub(i.AmountPaid)
	i.UpdatedAt = now
	i.IncrementVersion()
}

// RegisterPayment adds to the paid amount, recomputes the balance and
// moves the stored status to partial or paid
func (i *Invoice) RegisterPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if i.Status == InvoiceStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Invoice is already fully paid")
	}
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.BalanceDue = i.TotalAmount.Sub(i.AmountPaid)
	if i.BalanceDue.LessThanOrEqual(decimal.Zero) {
		i.Status = InvoiceStatusPaid
	} else {
		i.Status = InvoiceStatusPartial
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// EffectiveStatus evaluates the time-based overdue transition lazily on
// read: an unpaid invoice past its due date reads as overdue without a
// background job rewriting rows.
func (i *Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceStatusPaid {
		return InvoiceStatusPaid
	}
	if now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}
	return i.Status
}

// IsPaid returns true if the invoice is fully paid
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// Archive soft-deletes the invoice
func (i *Invoice) Archive() {
	i.Archived = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
