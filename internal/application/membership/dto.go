package membership

import (
	"time"

	"gymkeep/internal/domain/membership"
	"gymkeep/internal/shared/biztime"
)

type PlanCommand struct {
	Name         string
	PriceCents   uint64
	DurationDays int
}

type PlanDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	PriceCents   uint64    `json:"price_cents"`
	DurationDays int       `json:"duration_days"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PlanListQuery struct {
	Search     string
	ActiveOnly bool
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

type PlanListResult struct {
	Plans    []PlanDTO `json:"plans"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type AssignCommand struct {
	ClientID  uint
	PlanID    uint
	StartDate string
}

// SubscriptionDTO reports the window derived from the plan's current
// duration; changing the plan retroactively moves every end date.
type SubscriptionDTO struct {
	ID        uint      `json:"id"`
	ClientID  uint      `json:"client_id"`
	PlanID    uint      `json:"plan_id"`
	PlanName  string    `json:"plan_name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func planToDTO(plan *membership.Plan) PlanDTO {
	return PlanDTO{
		ID:           plan.ID(),
		Name:         plan.Name(),
		PriceCents:   plan.PriceCents(),
		DurationDays: plan.DurationDays(),
		Active:       plan.Active(),
		CreatedAt:    plan.CreatedAt(),
		UpdatedAt:    plan.UpdatedAt(),
	}
}

func subscriptionToDTO(cs membership.ClientSubscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:        cs.Subscription.ID(),
		ClientID:  cs.Subscription.ClientID(),
		PlanID:    cs.Plan.ID(),
		PlanName:  cs.Plan.Name(),
		StartDate: cs.Subscription.StartDate().Format(biztime.DateLayout),
		EndDate:   cs.Subscription.EndDate(cs.Plan).Format(biztime.DateLayout),
		Active:    cs.Subscription.IsActive(cs.Plan),
		CreatedAt: cs.Subscription.CreatedAt(),
	}
}
