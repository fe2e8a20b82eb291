package models

import "time"

type MembershipPlanModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:50"`
	PriceCents   uint64 `gorm:"not null"`
	DurationDays int    `gorm:"not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MembershipPlanModel) TableName() string {
	return "membership_plans"
}

// SubscriptionModel deliberately stores no end date; the window is always
// recomputed from the referenced plan's current duration.
type SubscriptionModel struct {
	ID        uint      `gorm:"primarykey"`
	ClientID  uint      `gorm:"not null;index"`
	PlanID    uint      `gorm:"not null;index"`
	StartDate time.Time `gorm:"not null"`
	CreatedAt time.Time

	Plan MembershipPlanModel `gorm:"foreignKey:PlanID"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
