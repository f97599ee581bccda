package scheduling

import (
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthAvailability(t *testing.T) {
	data, provider := newTestDataset()
	data.HolidayDates = append(data.HolidayDates, models.HolidayDate{
		ID: "hd-1", CalendarID: "hcal-1", Date: "2026-01-06", Name: "Epiphany",
	})
	// The holiday date also carries a PTO entry; holiday must win.
	data.PtoEntries = append(data.PtoEntries,
		models.PtoEntry{ID: "pto-1", CalendarID: "pcal-1", StartDate: "2026-01-06", EndDate: "2026-01-06"},
		models.PtoEntry{ID: "pto-2", CalendarID: "pcal-1", StartDate: "2026-01-07", EndDate: "2026-01-07"},
	)

	summary, err := newTestEngine().MonthAvailability(data, provider, 2026, 1, 60, "")
	require.NoError(t, err)
	require.Len(t, summary, 31)

	assert.Equal(t, constvars.DayStatusHoliday, summary["2026-01-06"].Status)
	assert.Equal(t, "Epiphany", summary["2026-01-06"].HolidayName)
	assert.Equal(t, constvars.DayStatusPto, summary["2026-01-07"].Status)
	assert.Equal(t, constvars.DayStatusAvailable, summary["2026-01-05"].Status)
	assert.Equal(t, 8, summary["2026-01-05"].SlotCount)
	// Weekend: weekday set excludes it.
	assert.Equal(t, constvars.DayStatusNoShift, summary["2026-01-10"].Status)
	// Before the assignment starts.
	assert.Equal(t, constvars.DayStatusNoShift, summary["2026-01-02"].Status)
}

func TestMonthAvailabilityFallbackWhenFullyBooked(t *testing.T) {
	data, provider := newTestDataset()
	for _, clock := range []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"} {
		data.Bookings = append(data.Bookings, models.Appointment{
			ID: "appt-" + clock, ProviderID: "prov-1", Date: "2026-01-05",
			StartTime: clock, Status: "confirmed",
		})
	}

	summary, err := newTestEngine().MonthAvailability(data, provider, 2026, 1, 60, "")
	require.NoError(t, err)
	assert.Equal(t, constvars.DayStatusNoShift, summary["2026-01-05"].Status)
	assert.Zero(t, summary["2026-01-05"].SlotCount)
}
