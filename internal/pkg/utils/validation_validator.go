package utils

import (
	"smileworks-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("cycle_unit", validateCycleUnit)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.ClockLayout, fl.Field().String())
	return err == nil
}

func validateCycleUnit(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.CycleUnitWeeks || value == constvars.CycleUnitMonths
}

func validateWeekday(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat":
		return true
	}
	return false
}
