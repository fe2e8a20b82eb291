package schedule

import (
	"time"

	"gymkeep/internal/domain/schedule"
)

type SlotCommand struct {
	Name            string
	Weekday         int
	StartTime       string
	DurationMinutes int
	TrainerID       uint
}

type SlotDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Weekday         int       `json:"weekday"`
	StartTime       string    `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	TrainerID       uint      `json:"trainer_id"`
	TrainerName     string    `json:"trainer_name,omitempty"`
	Enrolled        int64     `json:"enrolled"`
	CreatedAt       time.Time `json:"created_at"`
}

type SlotListQuery struct {
	TrainerID *uint
	ClientID  *uint
}

func slotToDTO(slot *schedule.ClassSlot) SlotDTO {
	return SlotDTO{
		ID:              slot.ID(),
		Name:            slot.Name(),
		Weekday:         slot.Weekday(),
		StartTime:       slot.StartTime(),
		DurationMinutes: slot.DurationMinutes(),
		TrainerID:       slot.TrainerID(),
		CreatedAt:       slot.CreatedAt(),
	}
}
