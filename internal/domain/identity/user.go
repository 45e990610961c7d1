package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/docflow/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole determines which surface an account may use
type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // Back-office surface
	RolePortal UserRole = "portal" // Vendor/customer portal surface
)

// IsValid checks if the role is a valid UserRole
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RolePortal
}

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a login account. A portal account may or may not
// correspond to a business contact; the link between the two is resolved
// by email, never stored here.
type User struct {
	shared.BaseAggregateRoot
	Username     string   `gorm:"type:varchar(64);not null;uniqueIndex"`
	Email        string   `gorm:"type:varchar(120);not null;uniqueIndex"`
	DisplayName  string   `gorm:"type:varchar(200)"`
	PasswordHash string   `gorm:"type:varchar(255);not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;index"`
	Archived     bool     `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account with a hashed password
func NewUser(username, email, password string, role UserRole) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) > 64 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 64 characters")
	}
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be admin or portal")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Email:             email,
		PasswordHash:      string(hash),
		Role:              role,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(name string) error {
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}
	u.DisplayName = strings.TrimSpace(name)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetEmail sets the user's email
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	u.Email = email
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// IsPortal returns true for portal accounts
func (u *User) IsPortal() bool {
	return u.Role == RolePortal
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Archive soft-deletes the account
func (u *User) Archive() {
	u.Archived = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}
