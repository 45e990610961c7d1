package persistence

import (
	"context"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormConversionRepository persists a source document and its derived
// document in one transaction, so a conversion either fully lands or
// leaves no trace
type GormConversionRepository struct {
	db *gorm.DB
}

// NewGormConversionRepository creates a new GormConversionRepository
func NewGormConversionRepository(db *gorm.DB) *GormConversionRepository {
	return &GormConversionRepository{db: db}
}

// SavePurchaseOrderWithBill saves both sides of an order -> bill
// conversion
func (r *GormConversionRepository) SavePurchaseOrderWithBill(ctx context.Context, order *document.PurchaseOrder, bill *document.VendorBill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := savePurchaseOrder(tx, order); err != nil {
			return err
		}
		return saveVendorBill(tx, bill)
	})
	if isUniqueViolation(err) {
		return shared.ErrNumberConflict
	}
	return err
}

// SaveSaleOrderWithInvoice saves both sides of an order -> invoice
// conversion
func (r *GormConversionRepository) SaveSaleOrderWithInvoice(ctx context.Context, order *document.SaleOrder, invoice *document.Invoice) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveSaleOrder(tx, order); err != nil {
			return err
		}
		return saveInvoice(tx, invoice)
	})
	if isUniqueViolation(err) {
		return shared.ErrNumberConflict
	}
	return err
}

// Ensure GormConversionRepository implements ConversionRepository
var _ document.ConversionRepository = (*GormConversionRepository)(nil)
