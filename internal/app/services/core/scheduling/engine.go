package scheduling

import (
	"smileworks-service/internal/app/models"
	"time"

	"go.uber.org/zap"
)

// Engine computes availability and occurrence views from a pre-loaded
// ScheduleDataset. It holds no mutable state; the logger is only used to
// surface dangling references for administrative cleanup.
type Engine struct {
	Log *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{Log: logger}
}

// templateMatchesDate checks the template's weekday set and its optional
// month-of-year and day-of-month constraint sets against the date.
func templateMatchesDate(template *models.ShiftTemplate, weekday string, t time.Time) bool {
	matched := false
	for _, day := range template.WeekDays {
		if day == weekday {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	if len(template.Months) > 0 {
		month := int(t.Month())
		found := false
		for _, m := range template.Months {
			if m == month {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(template.DaysOfMonth) > 0 {
		dayOfMonth := t.Day()
		found := false
		for _, d := range template.DaysOfMonth {
			if d == dayOfMonth {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
