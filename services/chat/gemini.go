package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const intentPrompt = `You are a scheduler bot for a service business. Read the customer's message and decide the intent.
Valid intents: check_availability, create_booking, small_talk.
Today is %s. Resolve relative dates ("tomorrow", "next monday") into YYYY-MM-DD.
Return ONLY a JSON object with the fields: intent, service, date (YYYY-MM-DD), time (HH:MM). Omit fields you cannot determine.
Customer said: %q`

// GeminiExtractor extracts intents with the Gemini API.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

func NewGeminiExtractor(apiKey string) (*GeminiExtractor, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(0.2)
	return &GeminiExtractor{model: model}, nil
}

func (g *GeminiExtractor) Extract(ctx context.Context, message string) (*Intent, error) {
	prompt := fmt.Sprintf(intentPrompt, time.Now().UTC().Format("2006-01-02"), message)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return parseIntentJSON(sb.String()), nil
}

// parseIntentJSON tolerates fenced or noisy model output. Anything
// unparseable degrades to small_talk rather than failing the
// conversation.
func parseIntentJSON(raw string) *Intent {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var intent Intent
	if err := json.Unmarshal([]byte(cleaned), &intent); err != nil {
		return &Intent{Intent: IntentSmallTalk}
	}
	switch intent.Intent {
	case IntentCheckAvailability, IntentCreateBooking, IntentSmallTalk:
	default:
		intent.Intent = IntentSmallTalk
	}
	return &intent
}
