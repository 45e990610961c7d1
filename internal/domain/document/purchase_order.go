package document

import (
	"strings"
	"time"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSent      PurchaseOrderStatus = "sent"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
	// PurchaseOrderStatusConfirmed is a legacy state reachable only by a
	// direct confirm on a draft, kept for records created by the old flow
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "confirmed"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent, PurchaseOrderStatusReceived,
		PurchaseOrderStatusCancelled, PurchaseOrderStatusConfirmed:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// IsTransitionTarget reports whether the status may ever be requested as a
// transition target. Draft is the creation state, never a target.
func (s PurchaseOrderStatus) IsTransitionTarget() bool {
	switch s {
	case PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled,
		PurchaseOrderStatusReceived, PurchaseOrderStatusSent:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusSent ||
			target == PurchaseOrderStatusCancelled ||
			target == PurchaseOrderStatusConfirmed
	case PurchaseOrderStatusSent:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled, PurchaseOrderStatusConfirmed:
		return false // Terminal states
	}
	return false
}

// DocumentOrigin distinguishes who created a document
type DocumentOrigin string

const (
	OriginAdmin  DocumentOrigin = "admin"
	OriginPortal DocumentOrigin = "portal"
)

// PurchaseOrderLine represents a line item in a purchase order
type PurchaseOrderLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	AnalyticTag string          `gorm:"type:varchar(100)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitPrice
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}

// PurchaseOrder represents a purchase order aggregate root.
// The vendor is free text copied from a contact; VendorAccountID is the
// resolved portal account link maintained on every vendor name write.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber     string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Reference       string              `gorm:"type:varchar(100)"`
	VendorName      string              `gorm:"type:varchar(200);not null"`
	VendorAccountID *uuid.UUID          `gorm:"type:uuid;index"`
	CreatedByID     *uuid.UUID          `gorm:"type:uuid;index"` // Set when originated from the portal
	OrderDate       time.Time           `gorm:"not null"`
	Lines           []PurchaseOrderLine `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount     decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"` // Sum of line totals
	Status          PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	Notes           string              `gorm:"type:text"`
	Archived        bool                `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in draft status
func NewPurchaseOrder(orderNumber, vendorName string, orderDate time.Time) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if strings.TrimSpace(vendorName) == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		VendorName:        strings.TrimSpace(vendorName),
		OrderDate:         orderDate,
		Lines:             make([]PurchaseOrderLine, 0),
		TotalAmount:       decimal.Zero,
		Status:            PurchaseOrderStatusDraft,
	}, nil
}

// SetVendorName updates the vendor display name. The portal account link
// must be re-resolved by the caller after every name change.
func (o *PurchaseOrder) SetVendorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	o.VendorName = strings.TrimSpace(name)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// LinkVendorAccount sets or clears the resolved portal account link.
// A nil id clears a stale link; it never leaves a previous value behind.
func (o *PurchaseOrder) LinkVendorAccount(accountID *uuid.UUID) {
	o.VendorAccountID = accountID
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetReference sets the free-text reference
func (o *PurchaseOrder) SetReference(reference string) {
	o.Reference = strings.TrimSpace(reference)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetNotes sets the order notes
func (o *PurchaseOrder) SetNotes(notes string) {
	o.Notes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetOrderDate sets the order date
func (o *PurchaseOrder) SetOrderDate(date time.Time) {
	if date.IsZero() {
		return
	}
	o.OrderDate = date
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// ReplaceLines replaces the whole line set from submitted inputs and
// recomputes the order total. Rows with a blank product name are skipped.
// Returns the new total; persistence of lines and total is one transaction.
func (o *PurchaseOrder) ReplaceLines(inputs []LineInput) decimal.Decimal {
	now := time.Now()
	lines := make([]PurchaseOrderLine, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		if in.IsBlank() {
			continue
		}
		lineTotal := in.Total()
		lines = append(lines, PurchaseOrderLine{
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
	return total
}

// RequestTransition applies a requested status change. A target outside the
// allowed set, or one the current status cannot reach, leaves the order
// unchanged and reports false; callers treat that as a no-op, not an error.
func (o *PurchaseOrder) RequestTransition(target PurchaseOrderStatus) bool {
	if !target.IsTransitionTarget() {
		return false
	}
	if !o.Status.CanTransitionTo(target) {
		return false
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return true
}

// MarkReceived transitions the order to received as part of vendor
// acceptance. Requires the order to have been sent.
func (o *PurchaseOrder) MarkReceived() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusReceived) {
		return shared.NewDomainError("INVALID_STATE", "Only sent orders can be received")
	}
	o.Status = PurchaseOrderStatusReceived
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Archive soft-deletes the order; documents are never physically deleted
func (o *PurchaseOrder) Archive() {
	o.Archived = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// CanModify returns true if header and lines may still change
func (o *PurchaseOrder) CanModify() bool {
	return o.Status == PurchaseOrderStatusDraft || o.Status == PurchaseOrderStatusSent
}

// IsDraft returns true if the order is in draft status
func (o *PurchaseOrder) IsDraft() bool {
	return o.Status == PurchaseOrderStatusDraft
}

// IsSent returns true if the order has been sent to the vendor
func (o *PurchaseOrder) IsSent() bool {
	return o.Status == PurchaseOrderStatusSent
}

// LineCount returns the number of persisted lines
func (o *PurchaseOrder) LineCount() int {
	return len(o.Lines)
}
