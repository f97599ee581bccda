package contracts

import "context"

// BookingConfirmationMail is the payload published to the mailer queue
// whenever a public booking succeeds. A separate consumer renders and
// sends the actual email.
type BookingConfirmationMail struct {
	AppointmentID string `json:"appointmentId"`
	PatientName   string `json:"patientName"`
	PatientEmail  string `json:"patientEmail"`
	ProviderName  string `json:"providerName"`
	LocationName  string `json:"locationName"`
	Date          string `json:"date"`
	StartClock    string `json:"startClock"`
	EndClock      string `json:"endClock"`
}

type MailQueueService interface {
	PublishBookingConfirmation(ctx context.Context, mail *BookingConfirmationMail) error
}
