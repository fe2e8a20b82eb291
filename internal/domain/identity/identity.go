// Package identity holds the login/credential side of an account. Exactly one
// Identity exists per account; the personal profile lives in the person
// package and links back here.
package identity

import (
	"fmt"
	"strings"
	"time"

	"gymkeep/internal/shared/authorization"
)

// Identity is the credential record behind an account. The password hash is
// opaque to the domain; hashing and verification live in infrastructure.
type Identity struct {
	id           uint
	login        string
	email        string
	passwordHash string
	role         authorization.Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewIdentity(login, email string, role authorization.Role) (*Identity, error) {
	login = strings.TrimSpace(login)
	email = strings.TrimSpace(email)

	if login == "" {
		return nil, fmt.Errorf("login is required")
	}
	if len(login) > 25 {
		return nil, fmt.Errorf("login too long (max 25 characters)")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	now := time.Now().UTC()
	return &Identity{
		login:     login,
		email:     email,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructIdentity rebuilds an identity from persistence.
func ReconstructIdentity(id uint, login, email, passwordHash string, role authorization.Role, createdAt, updatedAt time.Time) (*Identity, error) {
	if id == 0 {
		return nil, fmt.Errorf("identity ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	return &Identity{
		id:           id,
		login:        login,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (i *Identity) ID() uint                       { return i.id }
func (i *Identity) Login() string                  { return i.login }
func (i *Identity) Email() string                  { return i.email }
func (i *Identity) PasswordHash() string           { return i.passwordHash }
func (i *Identity) Role() authorization.Role       { return i.role }
func (i *Identity) CreatedAt() time.Time           { return i.createdAt }
func (i *Identity) UpdatedAt() time.Time           { return i.updatedAt }

// SetID assigns the storage-generated ID after the initial insert.
func (i *Identity) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("identity ID already set")
	}
	if id == 0 {
		return fmt.Errorf("identity ID cannot be zero")
	}
	i.id = id
	return nil
}

// SetPasswordHash stores an already-derived hash. The plaintext never reaches
// this type.
func (i *Identity) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	i.passwordHash = hash
	i.updatedAt = time.Now().UTC()
	return nil
}
