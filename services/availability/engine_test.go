package availability

import (
	"context"
	"errors"
	"testing"

	"slotwise-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeServices struct {
	service *models.Service
	err     error
}

func (f *fakeServices) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.service == nil || f.service.ID != id {
		return nil, &NotFoundError{Resource: "service", ID: id.String()}
	}
	return f.service, nil
}

type fakeRuleStore struct {
	rules      []models.AvailabilityRule
	exceptions []models.AvailabilityException
	rulesErr   error
	excErr     error
}

func (f *fakeRuleStore) RulesFor(ctx context.Context, professionalID uuid.UUID, weekday int) ([]models.AvailabilityRule, error) {
	if f.rulesErr != nil {
		return nil, f.rulesErr
	}
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.Weekday == weekday {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRuleStore) ExceptionsFor(ctx context.Context, professionalID uuid.UUID, date string) ([]models.AvailabilityException, error) {
	if f.excErr != nil {
		return nil, f.excErr
	}
	var out []models.AvailabilityException
	for _, e := range f.exceptions {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeBookings struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookings) ConfirmedBookings(ctx context.Context, professionalID uuid.UUID, date string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

// 2025-11-10 is a Monday, so weekday 1 rules apply.
const testDate = "2025-11-10"

type engineFixture struct {
	engine   *Engine
	services *fakeServices
	rules    *fakeRuleStore
	bookings *fakeBookings

	businessID     uuid.UUID
	serviceID      uuid.UUID
	professionalID uuid.UUID
}

func newEngineFixture(durationMin int) *engineFixture {
	f := &engineFixture{
		businessID:     uuid.New(),
		serviceID:      uuid.New(),
		professionalID: uuid.New(),
		rules:          &fakeRuleStore{},
		bookings:       &fakeBookings{},
	}
	f.services = &fakeServices{service: &models.Service{
		ID:              f.serviceID,
		BusinessID:      f.businessID,
		Name:            "Signature Haircut",
		DurationMinutes: durationMin,
	}}
	f.engine = NewEngine(f.services, f.rules, f.bookings, zap.NewNop())
	return f
}

func (f *engineFixture) compute(t *testing.T) []Slot {
	t.Helper()
	slots, err := f.engine.Compute(context.Background(), f.businessID, f.serviceID, f.professionalID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return slots
}

func TestCompute_ScenarioA_OpenDay(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "17:00:00", 30)}

	slots := f.compute(t)
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(mustInstant(t, "2025-11-10T09:00:00Z")) {
		t.Errorf("first slot should be 09:00, got %v", slots[0].Start)
	}
	if !slots[15].Start.Equal(mustInstant(t, "2025-11-10T16:30:00Z")) {
		t.Errorf("last slot should be 16:30, got %v", slots[15].Start)
	}
}

func TestCompute_ScenarioB_BookedSlotRemoved(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "17:00:00", 30)}
	f.bookings.bookings = []models.Booking{booking(t, "2025-11-10T10:00:00Z", "2025-11-10T10:30:00Z")}

	slots := f.compute(t)
	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
	var saw0930, saw1000 bool
	for _, s := range slots {
		if s.Start.Equal(mustInstant(t, "2025-11-10T09:30:00Z")) {
			saw0930 = true
		}
		if s.Start.Equal(mustInstant(t, "2025-11-10T10:00:00Z")) {
			saw1000 = true
		}
	}
	if !saw0930 {
		t.Error("09:30 slot touches the booking boundary only and must be retained")
	}
	if saw1000 {
		t.Error("10:00 slot overlaps the booking and must be removed")
	}
}

func TestCompute_ScenarioC_ExactFit(t *testing.T) {
	f := newEngineFixture(60)
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "10:00:00", 30)}

	slots := f.compute(t)
	if len(slots) != 1 {
		t.Fatalf("expected exactly 1 slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(mustInstant(t, "2025-11-10T09:00:00Z")) {
		t.Errorf("expected 09:00, got %v", slots[0].Start)
	}
}

func TestCompute_ScenarioD_ClosedException(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "17:00:00", 30)}
	f.rules.exceptions = []models.AvailabilityException{{
		ID:             uuid.New(),
		ProfessionalID: f.professionalID,
		Date:           testDate,
		IsClosed:       true,
	}}

	slots := f.compute(t)
	if slots == nil {
		t.Fatal("result must be an empty slice, not nil")
	}
	if len(slots) != 0 {
		t.Fatalf("closed exception must empty the day, got %d slots", len(slots))
	}
}

func TestCompute_NoRulesMeansEmptyNotError(t *testing.T) {
	f := newEngineFixture(30)

	slots := f.compute(t)
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", slots)
	}
}

func TestCompute_SplitShiftsConcatenatedInRuleOrder(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{
		rule(1, "09:00:00", "12:00:00", 30),
		rule(1, "14:00:00", "17:00:00", 30),
	}

	slots := f.compute(t)
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots across both shifts, got %d", len(slots))
	}
	if !slots[5].Start.Equal(mustInstant(t, "2025-11-10T11:30:00Z")) {
		t.Errorf("morning shift should end at 11:30, got %v", slots[5].Start)
	}
	if !slots[6].Start.Equal(mustInstant(t, "2025-11-10T14:00:00Z")) {
		t.Errorf("afternoon shift should start at 14:00, got %v", slots[6].Start)
	}
}

func TestCompute_MisconfiguredRuleSkippedOthersSurvive(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{
		rule(1, "12:00:00", "09:00:00", 30), // inverted, skipped
		rule(1, "14:00:00", "16:00:00", 30),
	}

	slots := f.compute(t)
	if len(slots) != 4 {
		t.Fatalf("expected the healthy rule's 4 slots, got %d", len(slots))
	}
}

func TestCompute_ServiceNotFound(t *testing.T) {
	f := newEngineFixture(30)

	_, err := f.engine.Compute(context.Background(), f.businessID, uuid.New(), f.professionalID, testDate)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCompute_ServiceOfOtherBusinessIsNotFound(t *testing.T) {
	f := newEngineFixture(30)

	_, err := f.engine.Compute(context.Background(), uuid.New(), f.serviceID, f.professionalID, testDate)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for cross-tenant lookup, got %v", err)
	}
}

func TestCompute_AccessorFailureIsNeverEmpty(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "17:00:00", 30)}
	f.bookings.err = errors.New("connection refused")

	slots, err := f.engine.Compute(context.Background(), f.businessID, f.serviceID, f.professionalID, testDate)
	var ae *AccessorError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AccessorError, got %v", err)
	}
	if slots != nil {
		t.Error("a failed fetch must not return a slot list")
	}
}

func TestCompute_DefaultDurationIs60(t *testing.T) {
	f := newEngineFixture(0) // no stored duration
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "10:30:00", 30)}

	slots := f.compute(t)
	// 60-minute default: 09:00 and 09:30 fit, 10:00 would cross 10:30.
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots with the 60 minute default, got %d", len(slots))
	}
}

func TestCompute_Idempotent(t *testing.T) {
	f := newEngineFixture(30)
	f.rules.rules = []models.AvailabilityRule{rule(1, "09:00:00", "17:00:00", 30)}
	f.bookings.bookings = []models.Booking{booking(t, "2025-11-10T13:00:00Z", "2025-11-10T13:30:00Z")}

	first := f.compute(t)
	second := f.compute(t)
	if len(first) != len(second) {
		t.Fatalf("idempotence violated: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) {
			t.Errorf("slot %d differs between runs", i)
		}
	}
}
