package persistence

import (
	"context"
	"errors"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order by its ID, lines included
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.PurchaseOrder, error) {
	var order document.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber finds a purchase order by its order number
func (r *GormPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*document.PurchaseOrder, error) {
	var order document.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds non-archived purchase orders with filtering
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.PurchaseOrder, error) {
	var orders []document.PurchaseOrder
	query := r.db.WithContext(ctx).Model(&document.PurchaseOrder{}).Where("archived = ?", false)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByVendorAccount finds orders linked to a portal vendor account
func (r *GormPurchaseOrderRepository) FindByVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.PurchaseOrder, error) {
	var orders []document.PurchaseOrder
	query := r.db.WithContext(ctx).Model(&document.PurchaseOrder{}).
		Where("archived = ? AND vendor_account_id = ?", false, accountID)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByVendorName finds non-archived orders carrying the given vendor
// display name
func (r *GormPurchaseOrderRepository) FindByVendorName(ctx context.Context, vendorName string) ([]document.PurchaseOrder, error) {
	var orders []document.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Where("archived = ? AND vendor_name = ?", false, vendorName).
		Preload("Lines").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its full line set in
// one transaction. Lines absent from the aggregate are deleted, so the
// stored set always mirrors the last submission.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *document.PurchaseOrder) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return savePurchaseOrder(tx, order)
	})
	if isUniqueViolation(err) {
		return shared.ErrNumberConflict
	}
	return err
}

// savePurchaseOrder persists an order inside an existing transaction;
// shared with the conversion repository
func savePurchaseOrder(tx *gorm.DB, order *document.PurchaseOrder) error {
	if err := tx.Omit("Lines").Save(order).Error; err != nil {
		return err
	}
	rows := make([]lineRow, 0, len(order.Lines))
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
		rows = append(rows, lineRow{id: order.Lines[i].ID, value: &order.Lines[i]})
	}
	return replaceLines(tx, "order_id", order.ID, &document.PurchaseOrderLine{}, rows)
}

// CountByStatus counts non-archived orders in the given status
func (r *GormPurchaseOrderRepository) CountByStatus(ctx context.Context, status document.PurchaseOrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&document.PurchaseOrder{}).
		Where("archived = ? AND status = ?", false, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("order_number LIKE ? OR vendor_name LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "vendor_name":
			query = query.Where("vendor_name = ?", value)
		}
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	field := validateSortField(filter.OrderBy, purchaseOrderSortFields)
	return query.Order(field + " " + validateSortOrder(filter.OrderDir))
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ document.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
