package membership

import "errors"

var (
	ErrPlanNotFound     = errors.New("membership plan not found")
	ErrPlanInactive     = errors.New("membership plan is no longer offered")
	ErrInvalidStartDate = errors.New("invalid start date")
)
