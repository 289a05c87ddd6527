package partner

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
)

// ErrEmailTaken is returned when another supplier already uses the email
var ErrEmailTaken = shared.ErrAlreadyExists.WithMessage("The email address is already registered.")

// Supplier is a vendor the shop buys stock from
type Supplier struct {
	shared.BaseEntity
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Address string  `gorm:"type:text" json:"address"`
	Phone   string  `gorm:"type:varchar(50)" json:"phone"`
	Email   *string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Note    string  `gorm:"type:text" json:"note"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierDetails are the editable attributes of a supplier
type SupplierDetails struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Note    string
}

// NewSupplier creates a new supplier
func NewSupplier(d SupplierDetails) (*Supplier, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	s := &Supplier{BaseEntity: shared.NewBaseEntity()}
	s.apply(d)
	return s, nil
}

// Update replaces the supplier's attributes
func (s *Supplier) Update(d SupplierDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	s.apply(d)
	s.UpdatedAt = time.Now()
	return nil
}

// EmailAddress returns the email or an empty string
func (s *Supplier) EmailAddress() string {
	if s.Email == nil {
		return ""
	}
	return *s.Email
}

func (s *Supplier) apply(d SupplierDetails) {
	s.Name = strings.TrimSpace(d.Name)
	s.Address = d.Address
	s.Phone = strings.TrimSpace(d.Phone)
	s.Note = d.Note
	s.Email = nil
	if email := strings.ToLower(strings.TrimSpace(d.Email)); email != "" {
		s.Email = &email
	}
}

func (d SupplierDetails) validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 255 characters")
	}
	if email := strings.TrimSpace(d.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
		}
	}
	if len(d.Note) > 1000 {
		return shared.ErrInvalidInput.WithMessage("Note cannot exceed 1000 characters")
	}
	return nil
}
