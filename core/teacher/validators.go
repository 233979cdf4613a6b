package teacher

import (
	"regexp"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "{0} must be a weekday from Monday to Friday"

	timeRangeTag   = "timerange"
	timeRangeText  = "{0} must be a time range like 09:00 - 10:00"
	timeRangeRegex = regexp.MustCompile(`^(\d{2}:\d{2}) - (\d{2}:\d{2})$`)
)

// InitValidators registers the teacher validators on validate.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(timeRangeTag, timeRangeValidation)
	core.RegisterCustomTranslation(validate, translator, timeRangeTag, timeRangeText)
}

func weekdayValidation(fl validator.FieldLevel) bool {
	return Weekday(fl.Field().String()).IsValid()
}

// timeRangeValidation checks for "HH:MM - HH:MM" with a start before the end.
func timeRangeValidation(fl validator.FieldLevel) bool {
	m := timeRangeRegex.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}
	start, err := time.Parse("15:04", m[1])
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", m[2])
	if err != nil {
		return false
	}
	return start.Before(end)
}
