package partner

import (
	"strings"
	"time"

	"github.com/docflow/backend/internal/domain/shared"
)

// Contact represents a vendor or customer as a business record,
// independent of any login account. Documents reference contacts by
// display name; the identity linker bridges contact email to a portal
// account email.
type Contact struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(128);not null;index"`
	Email    string `gorm:"type:varchar(120);index"` // Optional; unique when present
	Phone    string `gorm:"type:varchar(50)"`
	Company  string `gorm:"type:varchar(200)"`
	Archived bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact creates a new business contact
func NewContact(name, email string) (*Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	if len(name) > 128 {
		return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot exceed 128 characters")
	}

	return &Contact{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(strings.TrimSpace(email)),
	}, nil
}

// Rename changes the display name. Documents carrying the old name keep
// it as free text; their account linkage is refreshed by the caller.
func (c *Contact) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetEmail sets the contact email; empty clears it
func (c *Contact) SetEmail(email string) {
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetPhone sets the contact phone number
func (c *Contact) SetPhone(phone string) {
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetCompany sets the contact company name
func (c *Contact) SetCompany(company string) {
	c.Company = strings.TrimSpace(company)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// HasEmail returns true if the contact carries an email address
func (c *Contact) HasEmail() bool {
	return c.Email != ""
}

// Archive soft-deletes the contact; archived contacts are excluded from
// identity linkage
func (c *Contact) Archive() {
	c.Archived = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
