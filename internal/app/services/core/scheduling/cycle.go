package scheduling

import (
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/utils"
)

// ResolveCycleIndex returns the 1-based rotation position of the plan on the
// given date. Dates before the plan's effective date wrap via non-negative
// modulo, so the result is always within [1, cycleLength]. Monthly plans
// resolve to index 1: a single recurring monthly pattern, kept
// backward-compatible for cycleLength = 1.
func ResolveCycleIndex(plan *models.ShiftPlan, date string) (int, error) {
	if plan.CycleUnit != constvars.CycleUnitWeeks {
		return 1, nil
	}

	diffDays, err := utils.DaysBetween(plan.EffectiveDate, date)
	if err != nil {
		return 0, err
	}

	cycleLengthDays := plan.CycleLength * 7
	offset := ((diffDays % cycleLengthDays) + cycleLengthDays) % cycleLengthDays
	weekIndex := offset / 7
	return (weekIndex % plan.CycleLength) + 1, nil
}

// ResolveActiveCycleIndex is the occurrence-generator variant: it reports
// ok = false for dates before the plan's effective date instead of wrapping,
// so callers skip the date entirely.
func ResolveActiveCycleIndex(plan *models.ShiftPlan, date string) (int, bool, error) {
	diffDays, err := utils.DaysBetween(plan.EffectiveDate, date)
	if err != nil {
		return 0, false, err
	}
	if diffDays < 0 {
		return 0, false, nil
	}

	index, err := ResolveCycleIndex(plan, date)
	if err != nil {
		return 0, false, err
	}
	return index, true, nil
}
