package document

import (
	"strings"
	"time"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleOrderStatus represents the status of a sale order
type SaleOrderStatus string

const (
	SaleOrderStatusDraft SaleOrderStatus = "draft"
	SaleOrderStatusSent  SaleOrderStatus = "sent"
)

// IsValid checks if the status is a valid SaleOrderStatus
func (s SaleOrderStatus) IsValid() bool {
	return s == SaleOrderStatusDraft || s == SaleOrderStatusSent
}

// SaleOrderLine represents a line item in a sale order
type SaleOrderLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	AnalyticTag string          `gorm:"type:varchar(100)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleOrderLine) TableName() string {
	return "sale_order_lines"
}

// SaleOrder represents a sale order aggregate root. Unlike purchase
// orders, sale orders are always tied to a registered portal customer.
type SaleOrder struct {
	shared.BaseAggregateRoot
	OrderNumber       string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Reference         string          `gorm:"type:varchar(100)"`
	CustomerAccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName      string          `gorm:"type:varchar(200);not null"`
	OrderDate         time.Time       `gorm:"not null"`
	Lines             []SaleOrderLine `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status            SaleOrderStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	SentAt            *time.Time
	Notes             string `gorm:"type:text"`
	Archived          bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (SaleOrder) TableName() string {
	return "sale_orders"
}

// NewSaleOrder creates a new sale order in draft status
func NewSaleOrder(orderNumber string, customerAccountID uuid.UUID, customerName string, orderDate time.Time) (*SaleOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerAccountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer account cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &SaleOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerAccountID: customerAccountID,
		CustomerName:      strings.TrimSpace(customerName),
		OrderDate:         orderDate,
		Lines:             make([]SaleOrderLine, 0),
		TotalAmount:       decimal.Zero,
		Status:            SaleOrderStatusDraft,
	}, nil
}

// SetNotes sets the order notes
func (o *SaleOrder) SetNotes(notes string) {
	o.Notes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetReference sets the free-text reference
func (o *SaleOrder) SetReference(reference string) {
	o.Reference = strings.TrimSpace(reference)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// ReplaceLines replaces the whole line set and recomputes the total.
// Only allowed while the order is still a draft.
func (o *SaleOrder) ReplaceLines(inputs []LineInput) (decimal.Decimal, error) {
	if o.Status != SaleOrderStatusDraft {
		return decimal.Zero, shared.NewDomainError("INVALID_STATE", "Cannot modify lines of a sent order")
	}
	now := time.Now()
	lines := make([]SaleOrderLine, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		if in.IsBlank() {
			continue
		}
		lineTotal := in.Total()
		lines = append(lines, SaleOrderLine{
			ID:          uuid.New(),
			OrderID:     o.ID,
			ProductName: in.ProductName,
			AnalyticTag: in.AnalyticTag,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			LineTotal:   lineTotal,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		total = total.Add(lineTotal)
	}
	o.Lines = lines
	o.TotalAmount = total
	o.UpdatedAt = now
	o.IncrementVersion()
	return total, nil
}

// MarkSent transitions the order to sent. Sending is one-way; the caller
// must guard against re-sending before invoking conversion.
func (o *SaleOrder) MarkSent(sentAt time.Time) error {
	if o.Status == SaleOrderStatusSent {
		return shared.NewDomainError("ALREADY_SENT", "Sale order has already been sent")
	}
	o.Status = SaleOrderStatusSent
	o.SentAt = &sentAt
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// IsSent returns true if the order has been sent
func (o *SaleOrder) IsSent() bool {
	return o.Status == SaleOrderStatusSent
}

// Archive soft-deletes the order
func (o *SaleOrder) Archive() {
	o.Archived = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
