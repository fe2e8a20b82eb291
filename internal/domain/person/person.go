// Package person models the profile side of an account: one record per human,
// tagged with the variant it represents (client, trainer, employee, owner).
// The variant tag mirrors the account role; variant-specific data
// (subscriptions, owned class slots) lives in its own domain package and is
// joined in by the application layer when needed.
package person

import (
	"fmt"
	"time"

	"gymkeep/internal/shared/authorization"
)

// Kind discriminates the person variants.
type Kind string

const (
	KindClient   Kind = "client"
	KindTrainer  Kind = "trainer"
	KindEmployee Kind = "employee"
	KindOwner    Kind = "owner"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindClient, KindTrainer, KindEmployee, KindOwner:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// KindForRole maps an account role to the person variant it owns.
func KindForRole(role authorization.Role) (Kind, error) {
	kind := Kind(role)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, role)
	}
	return kind, nil
}

const nationalIDLength = 11

// Person holds the attributes shared by every variant. A person may exist
// without an identity (administrative record), hence the nullable link.
type Person struct {
	id          uint
	kind        Kind
	firstName   string
	lastName    string
	nationalID  string
	phoneNumber string
	active      bool
	identityID  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPerson(kind Kind, firstName, lastName, nationalID, phoneNumber string) (*Person, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if err := validateNationalID(nationalID); err != nil {
		return nil, err
	}
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone number is required")
	}

	now := time.Now().UTC()
	return &Person{
		kind:        kind,
		firstName:   firstName,
		lastName:    lastName,
		nationalID:  nationalID,
		phoneNumber: phoneNumber,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPerson rebuilds a person from persistence.
func ReconstructPerson(id uint, kind Kind, firstName, lastName, nationalID, phoneNumber string,
	active bool, identityID *uint, createdAt, updatedAt time.Time) (*Person, error) {

	if id == 0 {
		return nil, fmt.Errorf("person ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return &Person{
		id:          id,
		kind:        kind,
		firstName:   firstName,
		lastName:    lastName,
		nationalID:  nationalID,
		phoneNumber: phoneNumber,
		active:      active,
		identityID:  identityID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Person) ID() uint            { return p.id }
func (p *Person) Kind() Kind          { return p.kind }
func (p *Person) FirstName() string   { return p.firstName }
func (p *Person) LastName() string    { return p.lastName }
func (p *Person) NationalID() string  { return p.nationalID }
func (p *Person) PhoneNumber() string { return p.phoneNumber }
func (p *Person) Active() bool        { return p.active }
func (p *Person) IdentityID() *uint   { return p.identityID }
func (p *Person) CreatedAt() time.Time { return p.createdAt }
func (p *Person) UpdatedAt() time.Time { return p.updatedAt }

func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

func (p *Person) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("person ID already set")
	}
	if id == 0 {
		return fmt.Errorf("person ID cannot be zero")
	}
	p.id = id
	return nil
}

// LinkIdentity pairs the profile with its credential record.
func (p *Person) LinkIdentity(identityID uint) error {
	if identityID == 0 {
		return fmt.Errorf("identity ID cannot be zero")
	}
	if p.identityID != nil {
		return fmt.Errorf("person already linked to an identity")
	}
	p.identityID = &identityID
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateContact replaces the editable personal data. The national ID is
// immutable once assigned.
func (p *Person) UpdateContact(firstName, lastName, phoneNumber string) error {
	if firstName == "" {
		return fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return fmt.Errorf("last name is required")
	}
	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	p.firstName = firstName
	p.lastName = lastName
	p.phoneNumber = phoneNumber
	p.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deletes the person. Rows are never removed so historical
// subscriptions and enrollments keep their references.
func (p *Person) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}

func (p *Person) Activate() {
	p.active = true
	p.updatedAt = time.Now().UTC()
}

func validateNationalID(nationalID string) error {
	if len(nationalID) != nationalIDLength {
		return fmt.Errorf("%w: must be exactly %d digits", ErrInvalidNationalID, nationalIDLength)
	}
	for _, r := range nationalID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: must contain only digits", ErrInvalidNationalID)
		}
	}
	return nil
}
