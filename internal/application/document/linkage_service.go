package document

import (
	"context"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/identity"
	"github.com/docflow/backend/internal/domain/partner"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkageService resolves the portal account behind a vendor display
// name. The chain is name -> contact -> contact email -> portal account
// email; a break anywhere resolves to no link, never an error.
type LinkageService struct {
	contacts partner.ContactRepository
	users    identity.UserRepository
	orders   document.PurchaseOrderRepository
	logger   *zap.Logger
}

// NewLinkageService creates a new LinkageService
func NewLinkageService(
	contacts partner.ContactRepository,
	users identity.UserRepository,
	orders document.PurchaseOrderRepository,
	logger *zap.Logger,
) *LinkageService {
	return &LinkageService{
		contacts: contacts,
		users:    users,
		orders:   orders,
		logger:   logger,
	}
}

// ResolveVendorAccount resolves a vendor display name to a portal
// account ID. Returns nil when the name matches no contact, the contact
// carries no email, or no portal account uses that email.
func (s *LinkageService) ResolveVendorAccount(ctx context.Context, vendorName string) (*uuid.UUID, error) {
	contact, err := s.contacts.FindByName(ctx, vendorName)
	if err != nil {
		return nil, err
	}
	if contact == nil || !contact.HasEmail() {
		return nil, nil
	}

	account, err := s.users.FindPortalByEmail(ctx, contact.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return &account.ID, nil
}

// RefreshVendorLinkage re-resolves the account link on every order
// carrying the given vendor name. Called after a contact edit; an order
// whose chain broke gets its link overwritten to nil, not left stale.
func (s *LinkageService) RefreshVendorLinkage(ctx context.Context, vendorName string) error {
	accountID, err := s.ResolveVendorAccount(ctx, vendorName)
	if err != nil {
		return err
	}

	orders, err := s.orders.FindByVendorName(ctx, vendorName)
	if err != nil {
		return err
	}
	for i := range orders {
		order := &orders[i]
		order.LinkVendorAccount(accountID)
		if err := s.orders.Save(ctx, order); err != nil {
			return err
		}
	}

	s.logger.Info("refreshed vendor linkage",
		zap.String("vendor_name", vendorName),
		zap.Int("orders", len(orders)),
		zap.Bool("linked", accountID != nil))
	return nil
}
