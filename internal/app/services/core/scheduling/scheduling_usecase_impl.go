package scheduling

import (
	"context"
	"fmt"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	monthAvailabilityCacheTTL = 5 * time.Minute
	occurrenceLockTTL         = 10 * time.Second
)

type schedulingUsecase struct {
	engine          *Engine
	providers       contracts.ProviderRepository
	plans           contracts.ShiftPlanRepository
	slots           contracts.ShiftPlanSlotRepository
	templates       contracts.ShiftTemplateRepository
	assignments     contracts.ProviderAssignmentRepository
	holidayDates    contracts.HolidayDateRepository
	ptoEntries      contracts.PtoEntryRepository
	appointments    contracts.AppointmentRepository
	occurrences     contracts.ShiftOccurrenceRepository
	redisRepository contracts.RedisRepository
	locker          contracts.LockerService
	internalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSchedulingUsecase(
	providerRepository contracts.ProviderRepository,
	shiftPlanRepository contracts.ShiftPlanRepository,
	shiftPlanSlotRepository contracts.ShiftPlanSlotRepository,
	shiftTemplateRepository contracts.ShiftTemplateRepository,
	providerAssignmentRepository contracts.ProviderAssignmentRepository,
	holidayDateRepository contracts.HolidayDateRepository,
	ptoEntryRepository contracts.PtoEntryRepository,
	appointmentRepository contracts.AppointmentRepository,
	shiftOccurrenceRepository contracts.ShiftOccurrenceRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SchedulingUsecase {
	return &schedulingUsecase{
		engine:          NewEngine(logger),
		providers:       providerRepository,
		plans:           shiftPlanRepository,
		slots:           shiftPlanSlotRepository,
		templates:       shiftTemplateRepository,
		assignments:     providerAssignmentRepository,
		holidayDates:    holidayDateRepository,
		ptoEntries:      ptoEntryRepository,
		appointments:    appointmentRepository,
		occurrences:     shiftOccurrenceRepository,
		redisRepository: redisRepository,
		locker:          lockerService,
		internalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *schedulingUsecase) AvailableSlots(ctx context.Context, request *requests.AvailabilityQuery) ([]responses.AvailableSlot, error) {
	durationMinutes := request.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = uc.internalConfig.App.DefaultSlotDurationMinutes
	}

	provider, err := uc.providers.FindByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, request.ProviderID)
	}

	data, err := uc.loadProviderDataset(ctx, provider, request.Date, request.Date)
	if err != nil {
		return nil, err
	}

	result, err := uc.engine.AvailableSlots(data, provider, request.Date, durationMinutes, request.LocationID)
	if err != nil {
		return nil, err
	}

	slots := make([]responses.AvailableSlot, 0, len(result.Slots))
	for _, slot := range result.Slots {
		endMinutes, convErr := utils.ClockToMinutes(slot.Time)
		if convErr != nil {
			return nil, exceptions.ErrCannotParseClock(convErr)
		}
		slots = append(slots, responses.AvailableSlot{
			StartTime: slot.Time,
			EndTime:   utils.MinutesToClock(endMinutes + durationMinutes),
		})
	}
	return slots, nil
}

func (uc *schedulingUsecase) MonthAvailability(ctx context.Context, request *requests.MonthAvailabilityQuery) ([]responses.DayAvailability, error) {
	durationMinutes := request.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = uc.internalConfig.App.DefaultSlotDurationMinutes
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyMonthAvailabilityFormat,
		request.ProviderID, request.Year, request.Month, durationMinutes, request.LocationID)
	if cached, err := uc.redisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		days := []responses.DayAvailability{}
		if unmarshalErr := json.Unmarshal([]byte(cached), &days); unmarshalErr == nil {
			return days, nil
		}
	} else if err != nil {
		uc.Log.Warn("schedulingUsecase.MonthAvailability cache read failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	provider, err := uc.providers.FindByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, request.ProviderID)
	}

	firstDay := fmt.Sprintf("%04d-%02d-01", request.Year, request.Month)
	lastDay := fmt.Sprintf("%04d-%02d-%02d", request.Year, request.Month, utils.DaysInMonth(request.Year, request.Month))
	data, err := uc.loadProviderDataset(ctx, provider, firstDay, lastDay)
	if err != nil {
		return nil, err
	}

	summaries, err := uc.engine.MonthAvailability(data, provider, request.Year, request.Month, durationMinutes, request.LocationID)
	if err != nil {
		return nil, err
	}

	days := make([]responses.DayAvailability, 0, len(summaries))
	for date, summary := range summaries {
		days = append(days, responses.DayAvailability{
			Date:        date,
			Status:      summary.Status,
			HolidayName: summary.HolidayName,
			SlotCount:   summary.SlotCount,
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	if err := uc.redisRepository.Set(ctx, cacheKey, days, monthAvailabilityCacheTTL); err != nil {
		uc.Log.Warn("schedulingUsecase.MonthAvailability cache write failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return days, nil
}

func (uc *schedulingUsecase) GenerateOccurrences(ctx context.Context, request *requests.OccurrenceQuery) ([]responses.ScheduleOccurrence, error) {
	dates, err := utils.DatesInRange(request.From, request.To)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	data, err := uc.loadGridDataset(ctx, request.From, request.To)
	if err != nil {
		return nil, err
	}

	generated, err := uc.engine.GenerateOccurrences(data, dates)
	if err != nil {
		return nil, err
	}

	results := []responses.ScheduleOccurrence{}
	for _, occ := range generated {
		if request.ProviderID != "" && occ.ProviderID != request.ProviderID {
			continue
		}
		if request.LocationID != "" && occ.LocationID != request.LocationID {
			continue
		}
		results = append(results, uc.toOccurrenceResponse(data, &occ))
	}
	return results, nil
}

func (uc *schedulingUsecase) toOccurrenceResponse(data *ScheduleDataset, occ *GeneratedOccurrence) responses.ScheduleOccurrence {
	response := responses.ScheduleOccurrence{
		AssignmentID: occ.AssignmentID,
		ProviderID:   occ.ProviderID,
		LocationID:   occ.LocationID,
		TemplateID:   occ.TemplateID,
		TemplateName: occ.TemplateName,
		Date:         occ.Date,
		StartTime:    occ.StartTime,
		EndTime:      occ.EndTime,
		Status:       constvars.OccurrenceStatusScheduled,
		Color:        occ.Color,
	}
	if provider, ok := data.Providers[occ.ProviderID]; ok {
		response.ProviderName = provider.Name
	}
	if occ.Override != nil {
		response.Status = occ.Override.Status
		response.SubstituteProviderID = occ.Override.SubstituteProviderID
		response.Note = occ.Override.Note
	}
	return response
}

// loadProviderDataset assembles everything the engine needs for one
// provider's availability over [fromDate, toDate].
func (uc *schedulingUsecase) loadProviderDataset(ctx context.Context, provider *models.Provider, fromDate, toDate string) (*ScheduleDataset, error) {
	assignments, err := uc.assignments.FindByProviderID(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	slotIDs := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		slotIDs = append(slotIDs, assignment.ShiftPlanSlotID)
	}
	slots, err := uc.slots.FindByIDs(ctx, slotIDs)
	if err != nil {
		return nil, err
	}

	data := &ScheduleDataset{
		Providers:   map[string]models.Provider{provider.ID: *provider},
		Plans:       map[string]models.ShiftPlan{},
		Slots:       map[string]models.ShiftPlanSlot{},
		Templates:   map[string]models.ShiftTemplate{},
		Assignments: assignments,
		Overrides:   map[string]models.ShiftOccurrence{},
	}

	planIDs := []string{}
	templateIDs := []string{}
	for _, slot := range slots {
		data.Slots[slot.ID] = slot
		planIDs = append(planIDs, slot.ShiftPlanID)
		templateIDs = append(templateIDs, slot.TemplateID)
	}

	plans, err := uc.plans.FindByIDs(ctx, planIDs)
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		data.Plans[plan.ID] = plan
	}

	templates, err := uc.templates.FindByIDs(ctx, templateIDs)
	if err != nil {
		return nil, err
	}
	for _, template := range templates {
		data.Templates[template.ID] = template
	}

	if data.HolidayDates, err = uc.holidayDates.FindByCalendarID(ctx, provider.HolidayCalendarID); err != nil {
		return nil, err
	}
	if data.PtoEntries, err = uc.ptoEntries.FindByCalendarID(ctx, provider.PtoCalendarID); err != nil {
		return nil, err
	}
	if data.Bookings, err = uc.appointments.FindByProviderIDBetween(ctx, provider.ID, fromDate, toDate); err != nil {
		return nil, err
	}

	assignmentIDs := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		assignmentIDs = append(assignmentIDs, assignment.ID)
	}
	overrides, err := uc.occurrences.FindByAssignmentIDs(ctx, assignmentIDs, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	for _, override := range overrides {
		data.Overrides[OverrideKey(override.AssignmentID, override.Date)] = override
	}

	return data, nil
}

// loadGridDataset assembles the full cross-provider dataset for the admin
// schedule grid.
func (uc *schedulingUsecase) loadGridDataset(ctx context.Context, fromDate, toDate string) (*ScheduleDataset, error) {
	providers, err := uc.providers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := uc.assignments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	slotIDs := make([]string, 0, len(assignments))
	assignmentIDs := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		slotIDs = append(slotIDs, assignment.ShiftPlanSlotID)
		assignmentIDs = append(assignmentIDs, assignment.ID)
	}
	slots, err := uc.slots.FindByIDs(ctx, slotIDs)
	if err != nil {
		return nil, err
	}

	data := &ScheduleDataset{
		Providers:   map[string]models.Provider{},
		Plans:       map[string]models.ShiftPlan{},
		Slots:       map[string]models.ShiftPlanSlot{},
		Templates:   map[string]models.ShiftTemplate{},
		Assignments: assignments,
		Overrides:   map[string]models.ShiftOccurrence{},
	}
	for _, provider := range providers {
		data.Providers[provider.ID] = provider
	}

	planIDs := []string{}
	templateIDs := []string{}
	for _, slot := range slots {
		data.Slots[slot.ID] = slot
		planIDs = append(planIDs, slot.ShiftPlanID)
		templateIDs = append(templateIDs, slot.TemplateID)
	}

	plans, err := uc.plans.FindByIDs(ctx, planIDs)
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		data.Plans[plan.ID] = plan
	}

	templates, err := uc.templates.FindByIDs(ctx, templateIDs)
	if err != nil {
		return nil, err
	}
	for _, template := range templates {
		data.Templates[template.ID] = template
	}

	overrides, err := uc.occurrences.FindByAssignmentIDs(ctx, assignmentIDs, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	for _, override := range overrides {
		data.Overrides[OverrideKey(override.AssignmentID, override.Date)] = override
	}

	return data, nil
}
