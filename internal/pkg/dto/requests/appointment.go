package requests

type CreateAppointment struct {
	ProviderID      string `json:"providerId" validate:"required"`
	LocationID      string `json:"locationId" validate:"required"`
	PatientName     string `json:"patientName" validate:"required"`
	PatientEmail    string `json:"patientEmail" validate:"required,email"`
	PatientPhone    string `json:"patientPhone"`
	AppointmentType string `json:"appointmentType" validate:"required"`
	Date            string `json:"date" validate:"required,date"`
	StartTime       string `json:"startTime" validate:"required,clock"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	Notes           string `json:"notes"`
}
