package contracts

import (
	"context"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
)

type SchedulingUsecase interface {
	AvailableSlots(ctx context.Context, request *requests.AvailabilityQuery) ([]responses.AvailableSlot, error)
	MonthAvailability(ctx context.Context, request *requests.MonthAvailabilityQuery) ([]responses.DayAvailability, error)
	GenerateOccurrences(ctx context.Context, request *requests.OccurrenceQuery) ([]responses.ScheduleOccurrence, error)
	CancelOccurrence(ctx context.Context, request *requests.CancelOccurrence) (*responses.ScheduleOccurrence, error)
	RestoreOccurrence(ctx context.Context, request *requests.RestoreOccurrence) (*responses.ScheduleOccurrence, error)
	SwapOccurrence(ctx context.Context, request *requests.SwapOccurrence) (*responses.ScheduleOccurrence, error)
	ReassignOccurrence(ctx context.Context, request *requests.ReassignOccurrence) (*responses.ScheduleOccurrence, error)
}
