package document

import (
	"context"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SequenceRepository issues document numbers. Implementations keep an
// atomic counter per series (seeded from existing documents) so two
// concurrent creators cannot compute the same number from a stale scan.
type SequenceRepository interface {
	// NextNumber reserves and returns the next identifier in the series
	NextNumber(ctx context.Context, series Series) (string, error)
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order by ID, lines included
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds a purchase order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll finds non-archived purchase orders with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByVendorAccount finds orders linked to a portal vendor account
	FindByVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByVendorName finds non-archived orders carrying the given vendor
	// display name; used to refresh linkage after a contact edit
	FindByVendorName(ctx context.Context, vendorName string) ([]PurchaseOrder, error)

	// Save creates or updates an order together with its full line set and
	// total in one transaction
	Save(ctx context.Context, order *PurchaseOrder) error

	// CountByStatus counts non-archived orders in the given status
	CountByStatus(ctx context.Context, status PurchaseOrderStatus) (int64, error)
}

// VendorBillRepository defines the interface for vendor bill persistence
type VendorBillRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VendorBill, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]VendorBill, error)

	// FindByVendorAccount finds bills linked to a portal vendor account
	FindByVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]VendorBill, error)

	// FindBySourceOrder finds bills derived from a purchase order
	FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]VendorBill, error)

	Save(ctx context.Context, bill *VendorBill) error
}

// SaleOrderRepository defines the interface for sale order persistence
type SaleOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SaleOrder, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SaleOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SaleOrder, error)
	FindByCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]SaleOrder, error)
	Save(ctx context.Context, order *SaleOrder) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)
	FindByCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]Invoice, error)
	FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
}

// ConversionRepository persists a source document and its derived document
// in one transaction. A half-completed conversion (order sent without its
// invoice, or received without its bill) is a data-integrity bug.
type ConversionRepository interface {
	// SavePurchaseOrderWithBill saves both sides of a PO -> bill conversion
	SavePurchaseOrderWithBill(ctx context.Context, order *PurchaseOrder, bill *VendorBill) error

	// SaveSaleOrderWithInvoice saves both sides of a sale order -> invoice
	// conversion
	SaveSaleOrderWithInvoice(ctx context.Context, order *SaleOrder, invoice *Invoice) error
}
