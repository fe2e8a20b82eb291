package membership

import "context"

// PlanFilter narrows plan list queries. Search matches against the plan
// name. SortBy must name a sortable plan column; unknown columns fall
// back to the default ordering.
type PlanFilter struct {
	Search     string
	ActiveOnly bool
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	List(ctx context.Context, filter PlanFilter) ([]*Plan, int64, error)
	Update(ctx context.Context, plan *Plan) error
}

// ClientSubscription pairs a subscription with the live plan it references,
// so activity can be derived without a second lookup.
type ClientSubscription struct {
	Subscription *Subscription
	Plan         *Plan
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// ListByClient returns the client's subscriptions joined with their
	// current plans, newest first.
	ListByClient(ctx context.Context, clientID uint) ([]ClientSubscription, error)
}
