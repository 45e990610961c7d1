package persistence

import (
	"context"
	"errors"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID, lines included
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Invoice, error) {
	var invoice document.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll finds non-archived invoices with filtering
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.Invoice, error) {
	var invoices []document.Invoice
	query := r.db.WithContext(ctx).Model(&document.Invoice{}).Where("archived = ?", false)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindByCustomerAccount finds invoices belonging to a portal customer
// account
func (r *GormInvoiceRepository) FindByCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.Invoice, error) {
	var invoices []document.Invoice
	query := r.db.WithContext(ctx).Model(&document.Invoice{}).
		Where("archived = ? AND customer_account_id = ?", false, accountID)
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindBySourceOrder finds invoices derived from a sale order
func (r *GormInvoiceRepository) FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]document.Invoice, error) {
	var invoices []document.Invoice
	if err := r.db.WithContext(ctx).
		Where("archived = ? AND source_order_id = ?", false, orderID).
		Preload("Lines").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice together with its full line set in
// one transaction
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *document.Invoice) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveInvoice(tx, invoice)
	})
	if isUniqueViolation(err) {
		return shared.ErrNumberConflict
	}
	return err
}

// saveInvoice persists an invoice inside an existing transaction; shared
// with the conversion repository
func saveInvoice(tx *gorm.DB, invoice *document.Invoice) error {
	if err := tx.Omit("Lines").Save(invoice).Error; err != nil {
		return err
	}
	rows := make([]lineRow, 0, len(invoice.Lines))
	for i := range invoice.Lines {
		invoice.Lines[i].InvoiceID = invoice.ID
		rows = append(rows, lineRow{id: invoice.Lines[i].ID, value: &invoice.Lines[i]})
	}
	return replaceLines(tx, "invoice_id", invoice.ID, &document.InvoiceLine{}, rows)
}

func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("invoice_number LIKE ? OR customer_name LIKE ?", pattern, pattern)
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
	field := validateSortField(filter.OrderBy, invoiceSortFields)
	return query.Order(field + " " + validateSortOrder(filter.OrderDir))
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ document.InvoiceRepository = (*GormInvoiceRepository)(nil)
