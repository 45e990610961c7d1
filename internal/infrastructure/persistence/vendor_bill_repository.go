package persistence

import (
	"context"
	"errors"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVendorBillRepository implements VendorBillRepository using GORM
type GormVendorBillRepository struct {
	db *gorm.DB
}

// NewGormVendorBillRepository creates a new GormVendorBillRepository
func NewGormVendorBillRepository(db *gorm.DB) *GormVendorBillRepository {
	return &GormVendorBillRepository{db: db}
}

// FindByID finds a vendor bill by its ID, lines included
func (r *GormVendorBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.VendorBill, error) {
	var bill document.VendorBill
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&bill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// FindAll finds non-archived vendor bills with filtering
func (r *GormVendorBillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.VendorBill, error) {
	var bills []document.VendorBill
	query := r.db.WithContext(ctx).Model(&document.VendorBill{}).Where("archived = ?", false)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// FindByVendorAccount finds bills linked to a portal vendor account
func (r *GormVendorBillRepository) FindByVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.VendorBill, error) {
	var bills []document.VendorBill
	query := r.db.WithContext(ctx).Model(&document.VendorBill{}).
		Where("archived = ? AND vendor_account_id = ?", false, accountID)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// FindBySourceOrder finds bills derived from a purchase order
func (r *GormVendorBillRepository) FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]document.VendorBill, error) {
	var bills []document.VendorBill
	if err := r.db.WithContext(ctx).
		Where("archived = ? AND source_order_id = ?", false, orderID).
		Preload("Lines").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// Save creates or updates a bill together with its full line set in one
// transaction
func (r *GormVendorBillRepository) Save(ctx context.Context, bill *document.VendorBill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveVendorBill(tx, bill)
	})
	if isUniqueViolation(err) {
		return shared.ErrNumberConflict
	}
	return err
}

// saveVendorBill persists a bill inside an existing transaction; shared
// with the conversion repository
func saveVendorBill(tx *gorm.DB, bill *document.VendorBill) error {
	if err := tx.Omit("Lines").Save(bill).Error; err != nil {
		return err
	}
	rows := make([]lineRow, 0, len(bill.Lines))
	for i := range bill.Lines {
		bill.Lines[i].BillID = bill.ID
		rows = append(rows, lineRow{id: bill.Lines[i].ID, value: &bill.Lines[i]})
	}
	return replaceLines(tx, "bill_id", bill.ID, &document.VendorBillLine{}, rows)
}

func (r *GormVendorBillRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("bill_number LIKE ? OR vendor_name LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "vendor_name":
			query = query.Where("vendor_name = ?", value)
		}
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	field := validateSortField(filter.OrderBy, vendorBillSortFields)
	return query.Order(field + " " + validateSortOrder(filter.OrderDir))
}

// Ensure GormVendorBillRepository implements VendorBillRepository
var _ document.VendorBillRepository = (*GormVendorBillRepository)(nil)
