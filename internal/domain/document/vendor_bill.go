package document

import (
	"strings"
	"time"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorBillStatus represents the status of a vendor bill
type VendorBillStatus string

const (
	VendorBillStatusDraft     VendorBillStatus = "draft"
	VendorBillStatusConfirmed VendorBillStatus = "confirmed"
)

// IsValid checks if the status is a valid VendorBillStatus
func (s VendorBillStatus) IsValid() bool {
	return s == VendorBillStatusDraft || s == VendorBillStatusConfirmed
}

// PaymentStatus tracks how much of a payable document has been settled.
// It is derived from amount paid versus total, never set directly.
type PaymentStatus string

const (
	PaymentStatusNotPaid PaymentStatus = "not_paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// paymentStatusFor derives the payment status from paid vs total
func paymentStatusFor(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PaymentStatusNotPaid
	case paid.GreaterThanOrEqual(total):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}

// VendorBillLine represents a line item in a vendor bill
type VendorBillLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	BillID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	AnalyticTag string          `gorm:"type:varchar(100)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VendorBillLine) TableName() string {
	return "vendor_bill_lines"
}

// VendorBill represents a payable bill, either derived from a purchase
// order or created standalone
type VendorBill struct {
	shared.BaseAggregateRoot
	BillNumber      string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Reference       string           `gorm:"type:varchar(100)"` // Source PO order number when derived
	VendorName      string           `gorm:"type:varchar(200);not null"`
	VendorAccountID *uuid.UUID       `gorm:"type:uuid;index"`
	SourceOrderID   *uuid.UUID       `gorm:"type:uuid;index"` // Nullable: bills may be standalone
	BillDate        time.Time        `gorm:"not null"`
	Lines           []VendorBillLine `gorm:"foreignKey:BillID;references:ID"`
	TotalAmount     decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	AmountPaid      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Status          VendorBillStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	PaymentStatus   PaymentStatus    `gorm:"type:varchar(20);not null;default:'not_paid'"`
	Archived        bool             `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (VendorBill) TableName() string {
	return "vendor_bills"
}

// NewVendorBill creates a new vendor bill in draft status
func NewVendorBill(billNumber, vendorName string, billDate time.Time) (*VendorBill, error) {
	if billNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number cannot be empty")
	}
	if strings.TrimSpace(vendorName) == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if billDate.IsZero() {
		billDate = time.Now()
	}

	return &VendorBill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BillNumber:        billNumber,
		VendorName:        strings.TrimSpace(vendorName),
		BillDate:          billDate,
		Lines:             make([]VendorBillLine, 0),
		TotalAmount:       decimal.Zero,
		AmountPaid:        decimal.Zero,
		Status:            VendorBillStatusDraft,
		PaymentStatus:     PaymentStatusNotPaid,
	}, nil
}

// LinkSourceOrder records the purchase order this bill was derived from
func (b *VendorBill) LinkSourceOrder(orderID uuid.UUID, orderNumber string) {
	b.SourceOrderID = &orderID
	b.Reference = orderNumber
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// LinkVendorAccount sets or clears the resolved portal account link
func (b *VendorBill) LinkVendorAccount(accountID *uuid.UUID) {
	b.VendorAccountID = accountID
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Confirm transitions the bill to confirmed. Vendor-accepted bills are
// confirmed at creation; confirming twice is a no-op.
func (b *VendorBill) Confirm() {
	if b.Status == VendorBillStatusConfirmed {
		return
	}
	b.Status = VendorBillStatusConfirmed
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// ReplaceLines replaces the whole line set and recomputes the total
func (b *VendorBill) ReplaceLines(inputs []LineInput) decimal.Decimal {
	now := time.Now()
	lines := make([]VendorBillLine, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		if in.IsBlank() {
			continue
		}
		lineTotal := in.Total()
		lines = append(lines, VendorBillLine{
			ID:          uuid.New(),
			BillID:      b.ID,
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
	b.Lines = lines
	b.TotalAmount = total
	b.PaymentStatus = paymentStatusFor(b.AmountPaid, b.TotalAmount)
	b.UpdatedAt = now
	b.IncrementVersion()
	return total
}

// CloneLinesFrom copies every purchase order line onto this bill with
// identical quantity, price and total
func (b *VendorBill) CloneLinesFrom(order *PurchaseOrder) {
	now := time.Now()
	lines := make([]VendorBillLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, VendorBillLine{
			ID:          uuid.New(),
			BillID:      b.ID,
			ProductName: l.ProductName,
			AnalyticTag: l.AnalyticTag,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	b.Lines = lines
	b.TotalAmount = order.TotalAmount
	b.PaymentStatus = paymentStatusFor(b.AmountPaid, b.TotalAmount)
	b.UpdatedAt = now
	b.IncrementVersion()
}

// RegisterPayment adds to the paid amount and refreshes the payment status
func (b *VendorBill) RegisterPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	b.AmountPaid = b.AmountPaid.Add(amount)
	b.PaymentStatus = paymentStatusFor(b.AmountPaid, b.TotalAmount)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// BalanceDue returns total amount minus amount paid; never stored,
// always derived
func (b *VendorBill) BalanceDue() decimal.Decimal {
	return b.TotalAmount.Sub(b.AmountPaid)
}

// Archive soft-deletes the bill
func (b *VendorBill) Archive() {
	b.Archived = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}
