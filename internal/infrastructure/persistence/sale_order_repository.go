package persistence

import (
	"context"
	"errors"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleOrderRepository implements SaleOrderRepository using GORM
type GormSaleOrderRepository struct {
	db *gorm.DB
}

// NewGormSaleOrderRepository creates a new GormSaleOrderRepository
func NewGormSaleOrderRepository(db *gorm.DB) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{db: db}
}

// FindByID finds a sale order by its ID, lines included
func (r *GormSaleOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.SaleOrder, error) {
	var order document.SaleOrder
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

// FindByOrderNumber finds a sale order by its order number
func (r *GormSaleOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*document.SaleOrder, error) {
	var order document.SaleOrder
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

// FindAll finds non-archived sale orders with filtering
func (r *GormSaleOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.SaleOrder, error) {
	var orders []document.SaleOrder
	query := r.db.WithContext(ctx).Model(&document.SaleOrder{}).Where("archived = ?", false)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByCustomerAccount finds orders belonging to a portal customer
// account
func (r *GormSaleOrderRepository) FindByCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.SaleOrder, error) {
	var orders []document.SaleOrder
	query := r.db.WithContext(ctx).Model(&document.SaleOrder{}).
		Where("archived = ? AND customer_account_id = ?", false, accountID)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its full line set in
// one transaction
func (r *GormSaleOrderRepository) Save(ctx context.Context, order *document.SaleOrder) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveSaleOrder(tx, order)
	})
	if isUniqueViolation(err) {
		return shared.ErrNumberConflict
	}
	return err
}

// saveSaleOrder persists an order inside an existing transaction; shared
// with the conversion repository
func saveSaleOrder(tx *gorm.DB, order *document.SaleOrder) error {
	if err := tx.Omit("Lines").Save(order).Error; err != nil {
		return err
	}
	rows := make([]lineRow, 0, len(order.Lines))
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
		rows = append(rows, lineRow{id: order.Lines[i].ID, value: &order.Lines[i]})
	}
	return replaceLines(tx, "order_id", order.ID, &document.SaleOrderLine{}, rows)
}

func (r *GormSaleOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("order_number LIKE ? OR customer_name LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_name":
			query = query.Where("customer_name = ?", value)
		}
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	field := validateSortField(filter.OrderBy, saleOrderSortFields)
	return query.Order(field + " " + validateSortOrder(filter.OrderDir))
}

// Ensure GormSaleOrderRepository implements SaleOrderRepository
var _ document.SaleOrderRepository = (*GormSaleOrderRepository)(nil)
