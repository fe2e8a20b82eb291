// Package schedule covers the recurring weekly class grid and client
// enrollment into it.
package schedule

import (
	"fmt"
	"time"
)

// Weekday range follows the original schedule grid: 0=Monday .. 6=Sunday.
const (
	MinWeekday = 0
	MaxWeekday = 6
)

// StartTimeLayout is the wire format for a slot's time of day.
const StartTimeLayout = "15:04"

// ClassSlot is a recurring weekly group class owned by a trainer. Slots for
// the same trainer may overlap; the schedule deliberately performs no
// collision detection.
type ClassSlot struct {
	id              uint
	name            string
	weekday         int
	startTime       string
	durationMinutes int
	trainerID       uint
	createdAt       time.Time
	updatedAt       time.Time
}

func NewClassSlot(name string, weekday int, startTime string, durationMinutes int, trainerID uint) (*ClassSlot, error) {
	if err := validateSlot(name, weekday, startTime, durationMinutes); err != nil {
		return nil, err
	}
	if trainerID == 0 {
		return nil, fmt.Errorf("trainer ID is required")
	}

	now := time.Now().UTC()
	return &ClassSlot{
		name:            name,
		weekday:         weekday,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		trainerID:       trainerID,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructClassSlot rebuilds a class slot from persistence.
func ReconstructClassSlot(id uint, name string, weekday int, startTime string,
	durationMinutes int, trainerID uint, createdAt, updatedAt time.Time) (*ClassSlot, error) {

	if id == 0 {
		return nil, fmt.Errorf("class slot ID cannot be zero")
	}
	return &ClassSlot{
		id:              id,
		name:            name,
		weekday:         weekday,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		trainerID:       trainerID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *ClassSlot) ID() uint             { return s.id }
func (s *ClassSlot) Name() string         { return s.name }
func (s *ClassSlot) Weekday() int         { return s.weekday }
func (s *ClassSlot) StartTime() string    { return s.startTime }
func (s *ClassSlot) DurationMinutes() int { return s.durationMinutes }
func (s *ClassSlot) TrainerID() uint      { return s.trainerID }
func (s *ClassSlot) CreatedAt() time.Time { return s.createdAt }
func (s *ClassSlot) UpdatedAt() time.Time { return s.updatedAt }

func (s *ClassSlot) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("class slot ID already set")
	}
	if id == 0 {
		return fmt.Errorf("class slot ID cannot be zero")
	}
	s.id = id
	return nil
}

// Update edits the slot, including reassignment to another trainer.
func (s *ClassSlot) Update(name string, weekday int, startTime string, durationMinutes int, trainerID uint) error {
	if err := validateSlot(name, weekday, startTime, durationMinutes); err != nil {
		return err
	}
	if trainerID == 0 {
		return fmt.Errorf("trainer ID is required")
	}
	s.name = name
	s.weekday = weekday
	s.startTime = startTime
	s.durationMinutes = durationMinutes
	s.trainerID = trainerID
	s.updatedAt = time.Now().UTC()
	return nil
}

func validateSlot(name string, weekday int, startTime string, durationMinutes int) error {
	if name == "" {
		return fmt.Errorf("class name is required")
	}
	if weekday < MinWeekday || weekday > MaxWeekday {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	if _, err := time.Parse(StartTimeLayout, startTime); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStartTime, startTime)
	}
	if durationMinutes < 1 {
		return fmt.Errorf("class duration must be at least one minute")
	}
	return nil
}
