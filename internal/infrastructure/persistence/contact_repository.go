package persistence

import (
	"context"
	"errors"

	"github.com/docflow/backend/internal/domain/partner"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindByID finds a contact by its ID
func (r *GormContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Contact, error) {
	var contact partner.Contact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindByName finds a non-archived contact by exact display name.
// Duplicate names resolve to the oldest record; no match is nil, not an
// error.
func (r *GormContactRepository) FindByName(ctx context.Context, name string) (*partner.Contact, error) {
	var contact partner.Contact
	err := r.db.WithContext(ctx).
		Where("archived = ? AND name = ?", false, name).
		Order("created_at ASC").
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// FindAll finds non-archived contacts with filtering
func (r *GormContactRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Contact, error) {
	var contacts []partner.Contact
	query := r.db.WithContext(ctx).Model(&partner.Contact{}).Where("archived = ?", false)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", pattern, pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	field := validateSortField(filter.OrderBy, contactSortFields)
	query = query.Order(field + " " + validateSortOrder(filter.OrderDir))
	if err := query.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Save creates or updates a contact
func (r *GormContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	err := r.db.WithContext(ctx).Save(contact).Error
	if isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Ensure GormContactRepository implements ContactRepository
var _ partner.ContactRepository = (*GormContactRepository)(nil)
