package schedule

import "errors"

var (
	ErrSlotNotFound       = errors.New("class slot not found")
	ErrSlotHasEnrollments = errors.New("class slot still has enrolled clients")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this class")
	ErrNotEnrolled        = errors.New("not enrolled in this class")
	ErrInvalidWeekday     = errors.New("weekday out of range")
	ErrInvalidStartTime   = errors.New("invalid start time")
)
