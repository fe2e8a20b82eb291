// Package membership covers the plan catalog and the subscriptions clients
// hold against it. A subscription's activity window is always derived from
// the live plan duration, never stored.
package membership

import (
	"fmt"
	"time"
)

// Plan is a purchasable catalog entry. Deactivation is a flag flip; rows are
// never deleted so historical subscriptions keep a valid plan reference.
type Plan struct {
	id           uint
	name         string
	priceCents   uint64
	durationDays int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPlan(name string, priceCents uint64, durationDays int) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("plan name too long (max 50 characters)")
	}
	if durationDays < 1 {
		return nil, fmt.Errorf("plan duration must be at least one day")
	}

	now := time.Now().UTC()
	return &Plan{
		name:         name,
		priceCents:   priceCents,
		durationDays: durationDays,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(id uint, name string, priceCents uint64, durationDays int,
	active bool, createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if durationDays < 1 {
		return nil, fmt.Errorf("plan duration must be at least one day")
	}

	return &Plan{
		id:           id,
		name:         name,
		priceCents:   priceCents,
		durationDays: durationDays,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) PriceCents() uint64   { return p.priceCents }
func (p *Plan) DurationDays() int    { return p.durationDays }
func (p *Plan) Active() bool         { return p.active }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update edits the catalog entry. Changing the duration retroactively shifts
// the computed end date of every subscription referencing this plan; that is
// the documented behavior, not an oversight.
func (p *Plan) Update(name string, priceCents uint64, durationDays int) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if durationDays < 1 {
		return fmt.Errorf("plan duration must be at least one day")
	}
	p.name = name
	p.priceCents = priceCents
	p.durationDays = durationDays
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Plan) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) Activate() {
	p.active = true
	p.updatedAt = time.Now().UTC()
}
