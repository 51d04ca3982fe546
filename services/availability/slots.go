package availability

import (
	"slotwise-backend/models"
	"slotwise-backend/utils"
)

// DefaultSlotSizeMinutes is the booking granularity assumed when a rule
// does not set its own. A rule's granularity is independent of the
// service duration: a 45-minute service can still be offered at
// 15-minute starts.
const DefaultSlotSizeMinutes = 30

// GenerateSlots expands one rule into its candidate slots for a date.
// The cursor advances by the rule's slot size; a slot is emitted only
// while it fits entirely inside the rule window (start+duration <= end),
// so no candidate ever crosses closing time.
func GenerateSlots(date string, rule models.AvailabilityRule, serviceDurationMin int) ([]Slot, error) {
	step := rule.SlotSizeMinutes
	if step == 0 {
		step = DefaultSlotSizeMinutes
	}
	if step < 0 {
		return nil, &ConfigurationError{RuleID: rule.ID.String(), Reason: "non-positive slot size"}
	}

	cursor, err := utils.CombineUTC(date, rule.StartTime)
	if err != nil {
		return nil, &ConfigurationError{RuleID: rule.ID.String(), Reason: err.Error()}
	}
	end, err := utils.CombineUTC(date, rule.EndTime)
	if err != nil {
		return nil, &ConfigurationError{RuleID: rule.ID.String(), Reason: err.Error()}
	}
	if !end.After(cursor) {
		return nil, &ConfigurationError{RuleID: rule.ID.String(), Reason: "end_time not after start_time"}
	}

	var slots []Slot
	for !utils.AddMinutes(cursor, serviceDurationMin).After(end) {
		slots = append(slots, Slot{Start: cursor})
		cursor = utils.AddMinutes(cursor, step)
	}
	return slots, nil
}
