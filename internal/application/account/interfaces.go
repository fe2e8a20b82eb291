package account

import (
	"context"

	"gymkeep/internal/domain/identity"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/infrastructure/auth"
	"gymkeep/internal/shared/authorization"
)

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// TokenIssuer mints access tokens for authenticated identities.
type TokenIssuer interface {
	Generate(identityID uint, role authorization.Role, remember bool) (*auth.Token, error)
}

// Provisioner persists a new identity together with its person record
// atomically, or a person record alone.
type Provisioner interface {
	Provision(ctx context.Context, ident *identity.Identity, p *person.Person) error
	ProvisionPerson(ctx context.Context, p *person.Person) error
}
