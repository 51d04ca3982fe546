package availability

import (
	"context"
	"errors"

	"slotwise-backend/models"
	"slotwise-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultServiceDurationMinutes is used when a service has no stored
// duration. 60 is the canonical default for bookings.
const DefaultServiceDurationMinutes = 60

// Engine computes the bookable slots for one (business, service,
// professional, date) request. It holds no state of its own; every
// invocation is an independent pure function of its inputs plus what
// the accessors return at call time.
type Engine struct {
	services ServiceAccessor
	rules    RuleStore
	bookings BookingAccessor
	logger   *zap.Logger
}

func NewEngine(services ServiceAccessor, rules RuleStore, bookings BookingAccessor, logger *zap.Logger) *Engine {
	return &Engine{services: services, rules: rules, bookings: bookings, logger: logger}
}

// Compute returns the ordered open slots for the given date. The result
// is never nil: no rules, a closed exception, or a fully booked day all
// yield an empty slice. Accessor failures surface as AccessorError and
// are never treated as "no availability".
func (e *Engine) Compute(ctx context.Context, businessID, serviceID, professionalID uuid.UUID, date string) ([]Slot, error) {
	service, err := e.services.GetServiceByID(ctx, serviceID)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, &AccessorError{Op: "fetch service", Err: err}
	}
	if service.BusinessID != businessID {
		return nil, &NotFoundError{Resource: "service", ID: serviceID.String()}
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = DefaultServiceDurationMinutes
	}

	weekday, err := utils.WeekdayISO(date)
	if err != nil {
		return nil, err
	}

	// The three reads are independent; issue them together.
	var (
		rules      []models.AvailabilityRule
		exceptions []models.AvailabilityException
		bookings   []models.Booking
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rules, err = e.rules.RulesFor(gctx, professionalID, weekday); err != nil {
			return &AccessorError{Op: "fetch rules", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if exceptions, err = e.rules.ExceptionsFor(gctx, professionalID, date); err != nil {
			return &AccessorError{Op: "fetch exceptions", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bookings, err = e.bookings.ConfirmedBookings(gctx, professionalID, date); err != nil {
			return &AccessorError{Op: "fetch bookings", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]Slot, 0)

	// A closure exception is absolute: it empties the whole date no
	// matter what the rules say.
	for _, exc := range exceptions {
		if exc.IsClosed {
			return result, nil
		}
	}

	// Rules are expanded independently in store order; split shifts are
	// never merged. A misconfigured rule is skipped, the rest of the day
	// still contributes.
	for _, rule := range rules {
		candidates, err := GenerateSlots(date, rule, duration)
		if err != nil {
			var cfg *ConfigurationError
			if errors.As(err, &cfg) {
				e.logger.Warn("skipping misconfigured availability rule",
					zap.String("ruleID", cfg.RuleID),
					zap.String("reason", cfg.Reason))
				continue
			}
			return nil, err
		}
		result = append(result, FilterConflicts(candidates, duration, bookings)...)
	}

	return result, nil
}
