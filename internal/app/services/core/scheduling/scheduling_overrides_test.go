package scheduling

import (
	"context"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// overrideTestStore backs the fake repositories with shared in-memory data
// and records every occurrence write in call order, so tests can assert not
// just what ended up stored but what was written and in which sequence.
type overrideTestStore struct {
	providers   map[string]models.Provider
	plans       map[string]models.ShiftPlan
	slots       map[string]models.ShiftPlanSlot
	templates   map[string]models.ShiftTemplate
	assignments []models.ProviderAssignment
	holidays    []models.HolidayDate
	overrides   map[string]models.ShiftOccurrence
	writes      []models.ShiftOccurrence
}

// newOverrideTestStore builds two providers sharing the weekly day-shift
// rotation from newTestDataset: prov-1 on asg-1 and prov-2 on asg-2, both
// Monday through Friday 08:00-16:00 effective 2026-01-05. prov-2 observes a
// holiday on Monday 2026-01-19.
func newOverrideTestStore() *overrideTestStore {
	data, provider := newTestDataset()

	colleague := models.Provider{
		ID:                "prov-2",
		Name:              "Dr. Miriam Okafor",
		PrimaryLocationID: "loc-main",
		HolidayCalendarID: "hcal-2",
		PtoCalendarID:     "pcal-2",
		ShiftPlanIDs:      []string{"plan-1"},
	}

	return &overrideTestStore{
		providers: map[string]models.Provider{
			provider.ID:  *provider,
			colleague.ID: colleague,
		},
		plans:     data.Plans,
		slots:     data.Slots,
		templates: data.Templates,
		assignments: append(data.Assignments, models.ProviderAssignment{
			ID:              "asg-2",
			ProviderID:      colleague.ID,
			ShiftPlanSlotID: "slot-1",
			EffectiveDate:   "2026-01-05",
		}),
		holidays: []models.HolidayDate{
			{ID: "hd-1", CalendarID: "hcal-2", Date: "2026-01-19", Name: "Founders Day"},
		},
		overrides: map[string]models.ShiftOccurrence{},
	}
}

type fakeProviderRepository struct{ store *overrideTestStore }

func (f *fakeProviderRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	providers := make([]models.Provider, 0, len(f.store.providers))
	for _, provider := range f.store.providers {
		providers = append(providers, provider)
	}
	return providers, nil
}

func (f *fakeProviderRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	if provider, ok := f.store.providers[providerID]; ok {
		return &provider, nil
	}
	return nil, nil
}

func (f *fakeProviderRepository) Upsert(ctx context.Context, provider *models.Provider) error {
	f.store.providers[provider.ID] = *provider
	return nil
}

func (f *fakeProviderRepository) Delete(ctx context.Context, providerID string) error {
	delete(f.store.providers, providerID)
	return nil
}

type fakePlanRepository struct{ store *overrideTestStore }

func (f *fakePlanRepository) FindAll(ctx context.Context) ([]models.ShiftPlan, error) {
	plans := make([]models.ShiftPlan, 0, len(f.store.plans))
	for _, plan := range f.store.plans {
		plans = append(plans, plan)
	}
	return plans, nil
}

func (f *fakePlanRepository) FindByID(ctx context.Context, planID string) (*models.ShiftPlan, error) {
	if plan, ok := f.store.plans[planID]; ok {
		return &plan, nil
	}
	return nil, nil
}

func (f *fakePlanRepository) FindByIDs(ctx context.Context, planIDs []string) ([]models.ShiftPlan, error) {
	plans := []models.ShiftPlan{}
	for _, planID := range planIDs {
		if plan, ok := f.store.plans[planID]; ok {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (f *fakePlanRepository) Upsert(ctx context.Context, plan *models.ShiftPlan) error {
	f.store.plans[plan.ID] = *plan
	return nil
}

func (f *fakePlanRepository) Delete(ctx context.Context, planID string) error {
	delete(f.store.plans, planID)
	return nil
}

type fakeSlotRepository struct{ store *overrideTestStore }

func (f *fakeSlotRepository) FindByID(ctx context.Context, slotID string) (*models.ShiftPlanSlot, error) {
	if slot, ok := f.store.slots[slotID]; ok {
		return &slot, nil
	}
	return nil, nil
}

func (f *fakeSlotRepository) FindByIDs(ctx context.Context, slotIDs []string) ([]models.ShiftPlanSlot, error) {
	slots := []models.ShiftPlanSlot{}
	for _, slotID := range slotIDs {
		if slot, ok := f.store.slots[slotID]; ok {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func (f *fakeSlotRepository) FindByPlanID(ctx context.Context, planID string) ([]models.ShiftPlanSlot, error) {
	slots := []models.ShiftPlanSlot{}
	for _, slot := range f.store.slots {
		if slot.ShiftPlanID == planID {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func (f *fakeSlotRepository) FindByPlanIDs(ctx context.Context, planIDs []string) ([]models.ShiftPlanSlot, error) {
	slots := []models.ShiftPlanSlot{}
	for _, planID := range planIDs {
		byPlan, _ := f.FindByPlanID(ctx, planID)
		slots = append(slots, byPlan...)
	}
	return slots, nil
}

func (f *fakeSlotRepository) Upsert(ctx context.Context, slot *models.ShiftPlanSlot) error {
	f.store.slots[slot.ID] = *slot
	return nil
}

func (f *fakeSlotRepository) Delete(ctx context.Context, slotID string) error {
	delete(f.store.slots, slotID)
	return nil
}

type fakeTemplateRepository struct{ store *overrideTestStore }

func (f *fakeTemplateRepository) FindAll(ctx context.Context) ([]models.ShiftTemplate, error) {
	templates := make([]models.ShiftTemplate, 0, len(f.store.templates))
	for _, template := range f.store.templates {
		templates = append(templates, template)
	}
	return templates, nil
}

func (f *fakeTemplateRepository) FindByID(ctx context.Context, templateID string) (*models.ShiftTemplate, error) {
	if template, ok := f.store.templates[templateID]; ok {
		return &template, nil
	}
	return nil, nil
}

func (f *fakeTemplateRepository) FindByIDs(ctx context.Context, templateIDs []string) ([]models.ShiftTemplate, error) {
	templates := []models.ShiftTemplate{}
	for _, templateID := range templateIDs {
		if template, ok := f.store.templates[templateID]; ok {
			templates = append(templates, template)
		}
	}
	return templates, nil
}

func (f *fakeTemplateRepository) Upsert(ctx context.Context, template *models.ShiftTemplate) error {
	f.store.templates[template.ID] = *template
	return nil
}

func (f *fakeTemplateRepository) Delete(ctx context.Context, templateID string) error {
	delete(f.store.templates, templateID)
	return nil
}

type fakeAssignmentRepository struct{ store *overrideTestStore }

func (f *fakeAssignmentRepository) FindAll(ctx context.Context) ([]models.ProviderAssignment, error) {
	return f.store.assignments, nil
}

func (f *fakeAssignmentRepository) FindByID(ctx context.Context, assignmentID string) (*models.ProviderAssignment, error) {
	for i := range f.store.assignments {
		if f.store.assignments[i].ID == assignmentID {
			assignment := f.store.assignments[i]
			return &assignment, nil
		}
	}
	return nil, nil
}

func (f *fakeAssignmentRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.ProviderAssignment, error) {
	assignments := []models.ProviderAssignment{}
	for _, assignment := range f.store.assignments {
		if assignment.ProviderID == providerID {
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

func (f *fakeAssignmentRepository) Upsert(ctx context.Context, assignment *models.ProviderAssignment) error {
	for i := range f.store.assignments {
		if f.store.assignments[i].ID == assignment.ID {
			f.store.assignments[i] = *assignment
			return nil
		}
	}
	f.store.assignments = append(f.store.assignments, *assignment)
	return nil
}

func (f *fakeAssignmentRepository) Delete(ctx context.Context, assignmentID string) error {
	kept := f.store.assignments[:0]
	for _, assignment := range f.store.assignments {
		if assignment.ID != assignmentID {
			kept = append(kept, assignment)
		}
	}
	f.store.assignments = kept
	return nil
}

type fakeHolidayDateRepository struct{ store *overrideTestStore }

func (f *fakeHolidayDateRepository) FindByID(ctx context.Context, holidayDateID string) (*models.HolidayDate, error) {
	for i := range f.store.holidays {
		if f.store.holidays[i].ID == holidayDateID {
			holiday := f.store.holidays[i]
			return &holiday, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayDateRepository) FindByCalendarID(ctx context.Context, calendarID string) ([]models.HolidayDate, error) {
	holidays := []models.HolidayDate{}
	for _, holiday := range f.store.holidays {
		if holiday.CalendarID == calendarID {
			holidays = append(holidays, holiday)
		}
	}
	return holidays, nil
}

func (f *fakeHolidayDateRepository) FindByCalendarIDAndDate(ctx context.Context, calendarID, date string) (*models.HolidayDate, error) {
	for i := range f.store.holidays {
		if f.store.holidays[i].CalendarID == calendarID && f.store.holidays[i].Date == date {
			holiday := f.store.holidays[i]
			return &holiday, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayDateRepository) Upsert(ctx context.Context, holidayDate *models.HolidayDate) error {
	f.store.holidays = append(f.store.holidays, *holidayDate)
	return nil
}

func (f *fakeHolidayDateRepository) Delete(ctx context.Context, holidayDateID string) error {
	return nil
}

type fakePtoEntryRepository struct{}

func (f *fakePtoEntryRepository) FindByID(ctx context.Context, ptoEntryID string) (*models.PtoEntry, error) {
	return nil, nil
}

func (f *fakePtoEntryRepository) FindByCalendarID(ctx context.Context, calendarID string) ([]models.PtoEntry, error) {
	return nil, nil
}

func (f *fakePtoEntryRepository) Upsert(ctx context.Context, ptoEntry *models.PtoEntry) error {
	return nil
}

func (f *fakePtoEntryRepository) Delete(ctx context.Context, ptoEntryID string) error {
	return nil
}

type fakeAppointmentRepository struct{}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) FindByProviderIDAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) FindByProviderIDBetween(ctx context.Context, providerID, fromDate, toDate string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	return nil
}

type fakeOccurrenceRepository struct{ store *overrideTestStore }

func (f *fakeOccurrenceRepository) FindByAssignmentIDAndDate(ctx context.Context, assignmentID, date string) (*models.ShiftOccurrence, error) {
	if occurrence, ok := f.store.overrides[OverrideKey(assignmentID, date)]; ok {
		return &occurrence, nil
	}
	return nil, nil
}

func (f *fakeOccurrenceRepository) FindByAssignmentIDs(ctx context.Context, assignmentIDs []string, fromDate, toDate string) ([]models.ShiftOccurrence, error) {
	occurrences := []models.ShiftOccurrence{}
	for _, assignmentID := range assignmentIDs {
		for _, occurrence := range f.store.overrides {
			if occurrence.AssignmentID == assignmentID && occurrence.Date >= fromDate && occurrence.Date <= toDate {
				occurrences = append(occurrences, occurrence)
			}
		}
	}
	return occurrences, nil
}

func (f *fakeOccurrenceRepository) Upsert(ctx context.Context, occurrence *models.ShiftOccurrence) error {
	f.store.overrides[OverrideKey(occurrence.AssignmentID, occurrence.Date)] = *occurrence
	f.store.writes = append(f.store.writes, *occurrence)
	return nil
}

func (f *fakeOccurrenceRepository) Delete(ctx context.Context, occurrenceID string) error {
	for key, occurrence := range f.store.overrides {
		if occurrence.ID == occurrenceID {
			delete(f.store.overrides, key)
		}
	}
	return nil
}

type fakeRedisRepository struct{}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

type fakeLockerService struct{}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, "test-lock", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error { return nil }

func (f *fakeLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

func newOverrideTestUsecase() (contracts.SchedulingUsecase, *overrideTestStore) {
	store := newOverrideTestStore()
	usecase := NewSchedulingUsecase(
		&fakeProviderRepository{store: store},
		&fakePlanRepository{store: store},
		&fakeSlotRepository{store: store},
		&fakeTemplateRepository{store: store},
		&fakeAssignmentRepository{store: store},
		&fakeHolidayDateRepository{store: store},
		&fakePtoEntryRepository{},
		&fakeAppointmentRepository{},
		&fakeOccurrenceRepository{store: store},
		&fakeRedisRepository{},
		&fakeLockerService{},
		&config.InternalConfig{},
		zap.NewNop(),
	)
	return usecase, store
}

func requireConflict(t *testing.T, err error, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	require.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestReassignOccurrenceRejectsConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("target provider already working that date", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()

		occurrence, err := usecase.ReassignOccurrence(ctx, &requests.ReassignOccurrence{
			AssignmentID:     "asg-1",
			Date:             "2026-01-12",
			TargetProviderID: "prov-2",
			TargetDate:       "2026-01-13",
		})
		requireConflict(t, err, constvars.ErrClientReassignTargetOccupied)
		require.Nil(t, occurrence)
		require.Empty(t, store.writes)
	})

	t.Run("target date on target provider holiday", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()

		occurrence, err := usecase.ReassignOccurrence(ctx, &requests.ReassignOccurrence{
			AssignmentID:     "asg-1",
			Date:             "2026-01-12",
			TargetProviderID: "prov-2",
			TargetDate:       "2026-01-19",
		})
		requireConflict(t, err, constvars.ErrClientReassignTargetHoliday)
		require.Nil(t, occurrence)
		require.Empty(t, store.writes)
	})

	t.Run("cancelled target occurrence does not block", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()
		store.overrides[OverrideKey("asg-2", "2026-01-13")] = models.ShiftOccurrence{
			ID:           "occ-prior",
			AssignmentID: "asg-2",
			Date:         "2026-01-13",
			Status:       constvars.OccurrenceStatusCancelled,
		}

		occurrence, err := usecase.ReassignOccurrence(ctx, &requests.ReassignOccurrence{
			AssignmentID:     "asg-1",
			Date:             "2026-01-12",
			TargetProviderID: "prov-2",
			TargetDate:       "2026-01-13",
		})
		require.NoError(t, err)
		require.Equal(t, "asg-2", occurrence.AssignmentID)
		require.Equal(t, constvars.OccurrenceStatusScheduled, occurrence.Status)
	})
}

func TestReassignOccurrenceCrossProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("moves onto the target provider's own assignment", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()

		// Saturday: the day shift never generates for prov-2, so the target
		// date is free.
		occurrence, err := usecase.ReassignOccurrence(ctx, &requests.ReassignOccurrence{
			AssignmentID:     "asg-1",
			Date:             "2026-01-12",
			TargetProviderID: "prov-2",
			TargetDate:       "2026-01-17",
			Note:             "covering for Elena",
		})
		require.NoError(t, err)
		require.Equal(t, "asg-2", occurrence.AssignmentID)
		require.Equal(t, "prov-2", occurrence.ProviderID)
		require.Equal(t, "Dr. Miriam Okafor", occurrence.ProviderName)
		require.Equal(t, "2026-01-17", occurrence.Date)
		require.Equal(t, constvars.OccurrenceStatusScheduled, occurrence.Status)
		require.Equal(t, "08:00", occurrence.StartTime)
		require.Equal(t, "16:00", occurrence.EndTime)
		require.Empty(t, occurrence.SubstituteProviderID)

		require.Len(t, store.writes, 2)
		require.Equal(t, "asg-2", store.writes[0].AssignmentID)
		require.Equal(t, "2026-01-17", store.writes[0].Date)
		require.Equal(t, constvars.OccurrenceStatusScheduled, store.writes[0].Status)
		require.Equal(t, "asg-1", store.writes[1].AssignmentID)
		require.Equal(t, "2026-01-12", store.writes[1].Date)
		require.Equal(t, constvars.OccurrenceStatusCancelled, store.writes[1].Status)
	})

	t.Run("same provider and date is a no-op", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()

		occurrence, err := usecase.ReassignOccurrence(ctx, &requests.ReassignOccurrence{
			AssignmentID:     "asg-1",
			Date:             "2026-01-12",
			TargetProviderID: "prov-1",
			TargetDate:       "2026-01-12",
		})
		require.NoError(t, err)
		require.Equal(t, "asg-1", occurrence.AssignmentID)
		require.Empty(t, store.writes)
	})
}

func TestCancelAndRestoreOccurrence(t *testing.T) {
	ctx := context.Background()
	usecase, store := newOverrideTestUsecase()

	cancelled, err := usecase.CancelOccurrence(ctx, &requests.CancelOccurrence{
		AssignmentID: "asg-1",
		Date:         "2026-01-12",
		Note:         "sick day",
	})
	require.NoError(t, err)
	require.Equal(t, constvars.OccurrenceStatusCancelled, cancelled.Status)
	require.Equal(t, "sick day", cancelled.Note)
	require.Len(t, store.writes, 1)

	restored, err := usecase.RestoreOccurrence(ctx, &requests.RestoreOccurrence{
		AssignmentID: "asg-1",
		Date:         "2026-01-12",
	})
	require.NoError(t, err)
	require.Equal(t, constvars.OccurrenceStatusScheduled, restored.Status)
	require.Empty(t, restored.SubstituteProviderID)
	require.Equal(t, constvars.OccurrenceStatusScheduled, store.overrides[OverrideKey("asg-1", "2026-01-12")].Status)
}

func TestRestoreOccurrenceWithoutOverride(t *testing.T) {
	ctx := context.Background()
	usecase, store := newOverrideTestUsecase()

	restored, err := usecase.RestoreOccurrence(ctx, &requests.RestoreOccurrence{
		AssignmentID: "asg-1",
		Date:         "2026-01-13",
	})
	require.NoError(t, err)
	require.Equal(t, constvars.OccurrenceStatusScheduled, restored.Status)
	require.Empty(t, store.writes)
}

func TestRestoreOccurrenceUnknownDate(t *testing.T) {
	ctx := context.Background()
	usecase, _ := newOverrideTestUsecase()

	// Saturday: the rotation never reaches this date for asg-1.
	restored, err := usecase.RestoreOccurrence(ctx, &requests.RestoreOccurrence{
		AssignmentID: "asg-1",
		Date:         "2026-01-17",
	})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	require.Equal(t, constvars.ErrClientOccurrenceNotFound, customErr.ClientMessage)
	require.Nil(t, restored)
}

func TestSwapOccurrence(t *testing.T) {
	ctx := context.Background()

	t.Run("records the substitute", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()

		occurrence, err := usecase.SwapOccurrence(ctx, &requests.SwapOccurrence{
			AssignmentID:         "asg-1",
			Date:                 "2026-01-12",
			SubstituteProviderID: "prov-2",
		})
		require.NoError(t, err)
		require.Equal(t, constvars.OccurrenceStatusSwapped, occurrence.Status)
		require.Equal(t, "prov-2", occurrence.SubstituteProviderID)
		require.Len(t, store.writes, 1)
		require.Equal(t, constvars.OccurrenceStatusSwapped, store.writes[0].Status)
	})

	t.Run("unknown substitute is rejected", func(t *testing.T) {
		usecase, store := newOverrideTestUsecase()

		occurrence, err := usecase.SwapOccurrence(ctx, &requests.SwapOccurrence{
			AssignmentID:         "asg-1",
			Date:                 "2026-01-12",
			SubstituteProviderID: "prov-missing",
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		require.Equal(t, constvars.ErrClientProviderNotFound, customErr.ClientMessage)
		require.Nil(t, occurrence)
		require.Empty(t, store.writes)
	})
}
