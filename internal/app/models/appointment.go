package models

type Appointment struct {
	ID              string `bson:"_id" json:"id"`
	ProviderID      string `bson:"provider_id" json:"providerId"`
	LocationID      string `bson:"location_id" json:"locationId"`
	PatientName     string `bson:"patient_name" json:"patientName"`
	PatientEmail    string `bson:"patient_email" json:"patientEmail"`
	PatientPhone    string `bson:"patient_phone,omitempty" json:"patientPhone,omitempty"`
	AppointmentType string `bson:"appointment_type" json:"appointmentType"`
	Date            string `bson:"date" json:"date"`
	StartTime       string `bson:"start_time" json:"startTime"`
	EndTime         string `bson:"end_time" json:"endTime"`
	DurationMinutes int    `bson:"duration_minutes" json:"durationMinutes"`
	Notes           string `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string `bson:"status" json:"status"`
}
