package contracts

import (
	"context"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByProviderIDAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	FindByProviderIDBetween(ctx context.Context, providerID, fromDate, toDate string) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
}
