package http

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"gymkeep/internal/domain/schedule"
)

// RegisterValidators installs the custom binding validators on gin's
// validator engine. Safe to call more than once.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("nationalid", validNationalID)
	_ = v.RegisterValidation("clocktime", validClockTime)
}

// validNationalID requires exactly 11 digits.
func validNationalID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 11 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validClockTime requires a 24-hour HH:MM value.
func validClockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(schedule.StartTimeLayout, fl.Field().String())
	return err == nil
}
