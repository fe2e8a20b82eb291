package membership

import (
	"fmt"
	"time"

	"gymkeep/internal/shared/biztime"
)

// Subscription ties a client to a plan from a start date. Only the start date
// is stored; the end of the window is recomputed from the plan duration on
// every read, so a catalog edit is reflected in past subscriptions too.
type Subscription struct {
	id        uint
	clientID  uint
	planID    uint
	startDate time.Time
	createdAt time.Time
}

func NewSubscription(clientID, planID uint, startDate time.Time) (*Subscription, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidStartDate)
	}

	return &Subscription{
		clientID:  clientID,
		planID:    planID,
		startDate: biztime.DateOf(startDate),
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(id, clientID, planID uint, startDate, createdAt time.Time) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	return &Subscription{
		id:        id,
		clientID:  clientID,
		planID:    planID,
		startDate: biztime.DateOf(startDate),
		createdAt: createdAt,
	}, nil
}

func (s *Subscription) ID() uint             { return s.id }
func (s *Subscription) ClientID() uint       { return s.clientID }
func (s *Subscription) PlanID() uint         { return s.planID }
func (s *Subscription) StartDate() time.Time { return s.startDate }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// EndDate derives the last day of the window from the plan's current
// duration.
func (s *Subscription) EndDate(plan *Plan) time.Time {
	return s.startDate.AddDate(0, 0, plan.DurationDays())
}

// IsActiveOn reports whether the window covers the given day:
// startDate <= asOf <= startDate + plan duration, inclusive on both ends.
func (s *Subscription) IsActiveOn(plan *Plan, asOf time.Time) bool {
	day := biztime.DateOf(asOf)
	if day.Before(s.startDate) {
		return false
	}
	return !day.After(s.EndDate(plan))
}

// IsActive evaluates the window as of today.
func (s *Subscription) IsActive(plan *Plan) bool {
	return s.IsActiveOn(plan, biztime.Today())
}
