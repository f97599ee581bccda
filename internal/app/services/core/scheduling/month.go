package scheduling

import (
	"fmt"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/utils"
)

// MonthAvailability reduces every day of the month to a single category.
// Priority order is fixed: holiday, then no-shift, then pto, then available
// when at least one slot survives, then no-shift as the fallback for days
// whose slots were all consumed by bookings.
func (e *Engine) MonthAvailability(data *ScheduleDataset, provider *models.Provider, year, month, durationMinutes int, locationFilter string) (map[string]DaySummary, error) {
	result := map[string]DaySummary{}
	daysInMonth := utils.DaysInMonth(year, month)

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		slotResult, err := e.AvailableSlots(data, provider, date, durationMinutes, locationFilter)
		if err != nil {
			return nil, err
		}

		summary := DaySummary{SlotCount: len(slotResult.Slots)}
		switch {
		case slotResult.BlockedByHoliday:
			summary.Status = constvars.DayStatusHoliday
			summary.HolidayName = slotResult.HolidayName
		case slotResult.NoShift:
			summary.Status = constvars.DayStatusNoShift
		case slotResult.BlockedByPto:
			summary.Status = constvars.DayStatusPto
		case len(slotResult.Slots) > 0:
			summary.Status = constvars.DayStatusAvailable
		default:
			summary.Status = constvars.DayStatusNoShift
		}
		result[date] = summary
	}

	return result, nil
}
