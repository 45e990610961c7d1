package partner

import (
	"context"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactRepository defines the interface for business contact persistence
type ContactRepository interface {
	// FindByID finds a contact by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Contact, error)

	// FindByName finds a non-archived contact by exact display name.
	// Duplicate names resolve to the oldest record; returns nil without
	// error when no match exists.
	FindByName(ctx context.Context, name string) (*Contact, error)

	// FindAll finds non-archived contacts with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Contact, error)

	// Save creates or updates a contact
	Save(ctx context.Context, contact *Contact) error
}
