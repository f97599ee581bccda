package appointments

import (
	"context"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const mailPublishTimeout = 5 * time.Second

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ProviderRepository    contracts.ProviderRepository
	LocationRepository    contracts.LocationRepository
	SchedulingUsecase     contracts.SchedulingUsecase
	MailQueueService      contracts.MailQueueService
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	providerRepository contracts.ProviderRepository,
	locationRepository contracts.LocationRepository,
	schedulingUsecase contracts.SchedulingUsecase,
	mailQueueService contracts.MailQueueService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		ProviderRepository:    providerRepository,
		LocationRepository:    locationRepository,
		SchedulingUsecase:     schedulingUsecase,
		MailQueueService:      mailQueueService,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	provider, err := uc.ProviderRepository.FindByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, request.ProviderID)
	}
	location, err := uc.LocationRepository.FindByID(ctx, request.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, exceptions.ErrLocationNotFound(nil, request.LocationID)
	}

	// Recompute availability at booking time so a slot taken since the
	// client last looked cannot be double-booked.
	slots, err := uc.SchedulingUsecase.AvailableSlots(ctx, &requests.AvailabilityQuery{
		ProviderID:      request.ProviderID,
		Date:            request.Date,
		DurationMinutes: request.DurationMinutes,
		LocationID:      request.LocationID,
	})
	if err != nil {
		return nil, err
	}
	open := false
	for _, slot := range slots {
		if slot.StartTime == request.StartTime {
			open = true
			break
		}
	}
	if !open {
		return nil, exceptions.ErrSlotNotAvailable(request.Date, request.StartTime)
	}

	startMinutes, err := utils.ClockToMinutes(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseClock(err)
	}
	endTime := utils.MinutesToClock(startMinutes + request.DurationMinutes)

	appointment := &models.Appointment{
		ID:              utils.GenerateEntityID("appt"),
		ProviderID:      request.ProviderID,
		LocationID:      request.LocationID,
		PatientName:     request.PatientName,
		PatientEmail:    request.PatientEmail,
		PatientPhone:    request.PatientPhone,
		AppointmentType: request.AppointmentType,
		Date:            request.Date,
		StartTime:       request.StartTime,
		EndTime:         endTime,
		DurationMinutes: request.DurationMinutes,
		Notes:           request.Notes,
		Status:          constvars.AppointmentStatusConfirmed,
	}

	if err := uc.AppointmentRepository.Create(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error persisting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Fire and forget: a mailer outage must never fail the booking.
	go uc.publishConfirmationMail(requestID, appointment, provider.Name, location.Name)

	return appointment, nil
}

func (uc *appointmentUsecase) publishConfirmationMail(requestID string, appointment *models.Appointment, providerName, locationName string) {
	ctx, cancel := context.WithTimeout(context.Background(), mailPublishTimeout)
	defer cancel()

	mail := &contracts.BookingConfirmationMail{
		AppointmentID: appointment.ID,
		PatientName:   appointment.PatientName,
		PatientEmail:  appointment.PatientEmail,
		ProviderName:  providerName,
		LocationName:  locationName,
		Date:          appointment.Date,
		StartClock:    appointment.StartTime,
		EndClock:      appointment.EndTime,
	}
	if err := uc.MailQueueService.PublishBookingConfirmation(ctx, mail); err != nil {
		uc.Log.Error("appointmentUsecase.publishConfirmationMail error publishing booking confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled)
}
