package partner

import (
	"context"
	"time"

	"github.com/docflow/backend/internal/domain/partner"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Relinker re-resolves the portal account link on documents carrying a
// vendor display name. Implemented by the document linkage service.
type Relinker interface {
	RefreshVendorLinkage(ctx context.Context, vendorName string) error
}

// ContactService handles business contact operations
type ContactService struct {
	contacts partner.ContactRepository
	relinker Relinker
	logger   *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contacts partner.ContactRepository, relinker Relinker, logger *zap.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		relinker: relinker,
		logger:   logger,
	}
}

// CreateContactRequest represents a request to create a contact
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=128"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Company string `json:"company" binding:"max=200"`
}

// UpdateContactRequest represents a request to update a contact
type UpdateContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ToContactResponse converts a domain contact to a response DTO
func ToContactResponse(contact *partner.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Company:   contact.Company,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
		Version:   contact.Version,
	}
}

// Create creates a new contact. Documents already carrying this name as
// free text pick up their account link on the next linkage refresh.
func (s *ContactService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	contact, err := partner.NewContact(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		contact.SetPhone(req.Phone)
	}
	if req.Company != "" {
		contact.SetCompany(req.Company)
	}

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.relinker.RefreshVendorLinkage(ctx, contact.Name); err != nil {
		return nil, err
	}

	s.logger.Info("contact created",
		zap.String("name", contact.Name),
		zap.Bool("has_email", contact.HasEmail()))

	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, contactID uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contacts.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	response := ToContactResponse(contact)
	return &response, nil
}

// List retrieves non-archived contacts
func (s *ContactService) List(ctx context.Context, filter shared.Filter) ([]ContactResponse, error) {
	contacts, err := s.contacts.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, ToContactResponse(&contacts[i]))
	}
	return responses, nil
}

// Update edits a contact and refreshes document linkage for both the old
// and new name, so a rename or email change never leaves a stale link
func (s *ContactService) Update(ctx context.Context, contactID uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	contact, err := s.contacts.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	oldName := contact.Name
	if req.Name != nil {
		if err := contact.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		contact.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		contact.SetPhone(*req.Phone)
	}
	if req.Company != nil {
		contact.SetCompany(*req.Company)
	}

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.relinker.RefreshVendorLinkage(ctx, contact.Name); err != nil {
		return nil, err
	}
	if oldName != contact.Name {
		if err := s.relinker.RefreshVendorLinkage(ctx, oldName); err != nil {
			return nil, err
		}
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// Archive soft-deletes a contact and detaches the account link from its
// documents
func (s *ContactService) Archive(ctx context.Context, contactID uuid.UUID) error {
	contact, err := s.contacts.FindByID(ctx, contactID)
	if err != nil {
		return err
	}
	contact.Archive()
	if err := s.contacts.Save(ctx, contact); err != nil {
		return err
	}
	return s.relinker.RefreshVendorLinkage(ctx, contact.Name)
}
