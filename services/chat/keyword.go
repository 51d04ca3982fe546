package chat

import (
	"context"
	"regexp"
	"strings"
)

var (
	datePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	timePattern = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
)

// KeywordExtractor is the offline fallback used when no language-model
// API key is configured. It keyword-matches the intent and lifts
// explicit dates/times out of the message.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

func (k *KeywordExtractor) Extract(ctx context.Context, message string) (*Intent, error) {
	lower := strings.ToLower(message)

	intent := &Intent{Intent: IntentSmallTalk}
	switch {
	case strings.Contains(lower, "book") || strings.Contains(lower, "reserve") || strings.Contains(lower, "agendar"):
		intent.Intent = IntentCreateBooking
	case strings.Contains(lower, "availab") || strings.Contains(lower, "free") ||
		strings.Contains(lower, "open") || strings.Contains(lower, "slot") ||
		strings.Contains(lower, "horário"):
		intent.Intent = IntentCheckAvailability
	}

	if m := datePattern.FindString(message); m != "" {
		intent.Date = m
	}
	if m := timePattern.FindString(message); m != "" {
		if len(m) == len("9:00") {
			m = "0" + m
		}
		intent.Time = m
	}
	return intent, nil
}
