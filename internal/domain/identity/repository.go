package identity

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Identity, error)
	// FindByLogin and FindByEmail are case-sensitive exact lookups, used both
	// for login and for duplicate-registration checks. They return
	// (nil, nil) when no identity matches.
	FindByLogin(ctx context.Context, login string) (*Identity, error)
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Update(ctx context.Context, ident *Identity) error
}
