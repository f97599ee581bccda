package constvars

// Cycle units supported by shift plans.
const (
	CycleUnitWeeks  = "Weeks"
	CycleUnitMonths = "Months"
)

// Occurrence override statuses.
const (
	OccurrenceStatusScheduled = "scheduled"
	OccurrenceStatusCancelled = "cancelled"
	OccurrenceStatusSwapped   = "swapped"
)

// Appointment statuses.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Day statuses reported by the month availability summary.
const (
	DayStatusAvailable = "available"
	DayStatusHoliday   = "holiday"
	DayStatusPto       = "pto"
	DayStatusNoShift   = "no-shift"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	MinutesPerDay = 24 * 60
)
