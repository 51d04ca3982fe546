package availability

import "fmt"

// NotFoundError signals a missing referenced entity (service,
// professional). Mapped to a client error by the HTTP layer.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConfigurationError marks a rule that cannot be expanded (negative
// slot size or inverted window). The engine skips the rule and keeps
// going; the request as a whole still succeeds.
type ConfigurationError struct {
	RuleID string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rule %s misconfigured: %s", e.RuleID, e.Reason)
}

// AccessorError wraps a failed data fetch. Empty results and fetch
// failures must never be conflated, so the whole request fails.
type AccessorError struct {
	Op  string
	Err error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AccessorError) Unwrap() error { return e.Err }
