package models

import "time"

type ClassSlotModel struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"not null;size:256"`
	Weekday         int    `gorm:"not null"`
	StartTime       string `gorm:"not null;size:5"`
	DurationMinutes int    `gorm:"not null"`
	TrainerID       uint   `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ClassSlotModel) TableName() string {
	return "class_slots"
}

// EnrollmentModel carries the composite unique index that makes the
// application-level duplicate check race-free.
type EnrollmentModel struct {
	ID          uint `gorm:"primarykey"`
	ClientID    uint `gorm:"not null;uniqueIndex:idx_enrollment_client_slot"`
	ClassSlotID uint `gorm:"not null;uniqueIndex:idx_enrollment_client_slot;index"`
	CreatedAt   time.Time
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
