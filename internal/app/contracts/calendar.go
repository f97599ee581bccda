package contracts

import (
	"context"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
)

type HolidayCalendarRepository interface {
	FindByID(ctx context.Context, calendarID string) (*models.HolidayCalendar, error)
	Upsert(ctx context.Context, calendar *models.HolidayCalendar) error
}

type HolidayDateRepository interface {
	FindByID(ctx context.Context, holidayDateID string) (*models.HolidayDate, error)
	FindByCalendarID(ctx context.Context, calendarID string) ([]models.HolidayDate, error)
	FindByCalendarIDAndDate(ctx context.Context, calendarID, date string) (*models.HolidayDate, error)
	Upsert(ctx context.Context, holidayDate *models.HolidayDate) error
	Delete(ctx context.Context, holidayDateID string) error
}

type PtoCalendarRepository interface {
	FindByID(ctx context.Context, calendarID string) (*models.PtoCalendar, error)
	Upsert(ctx context.Context, calendar *models.PtoCalendar) error
}

type PtoEntryRepository interface {
	FindByID(ctx context.Context, ptoEntryID string) (*models.PtoEntry, error)
	FindByCalendarID(ctx context.Context, calendarID string) ([]models.PtoEntry, error)
	Upsert(ctx context.Context, ptoEntry *models.PtoEntry) error
	Delete(ctx context.Context, ptoEntryID string) error
}

type HolidayUsecase interface {
	FindHolidayDates(ctx context.Context, calendarID string) ([]models.HolidayDate, error)
	UpsertHolidayDate(ctx context.Context, request *requests.UpsertHolidayDate) (*responses.UpsertResult, error)
	DeleteHolidayDate(ctx context.Context, holidayDateID string) error
}

type PtoUsecase interface {
	FindPtoEntries(ctx context.Context, calendarID string) ([]models.PtoEntry, error)
	UpsertPtoEntry(ctx context.Context, request *requests.UpsertPtoEntry) (*responses.UpsertResult, error)
	DeletePtoEntry(ctx context.Context, ptoEntryID string) error
}
