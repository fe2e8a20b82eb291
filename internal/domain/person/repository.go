package person

import "context"

// Filter narrows person list queries. Search is a raw multi-term phrase
// applied over first name, last name, national ID and phone number.
type Filter struct {
	Kind     Kind
	Search   string
	Page     int
	PageSize int
}

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Person, error)
	GetByIdentityID(ctx context.Context, identityID uint) (*Person, error)
	FindByNationalID(ctx context.Context, nationalID string) (*Person, error)
	List(ctx context.Context, filter Filter) ([]*Person, int64, error)
	Update(ctx context.Context, p *Person) error
}
