package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/openai"
)

const (
	remoteTemperature = 0.1
	remoteMaxTokens   = 500
)

const systemInstruction = "You are a calendar assistant command parser. " +
	"You convert natural-language calendar commands into structured JSON. " +
	"Respond with a single JSON object only, no prose and no markdown."

const parsePromptTemplate = `Current time: %s

Parse this calendar command: %q

Return a JSON object with this exact shape:
{
  "intent": "one of: create_event, update_event, delete_event, list_events, query_schedule, add_contact, query_contact, set_reminder, find_time, find_free_time, add_attendee, check_conflicts, unknown",
  "confidence": 0.0 to 1.0,
  "entities": {
    "title": "event title",
    "date_time": "RFC3339 instant",
    "duration_minutes": integer,
    "location": "place name",
    "description": "free text",
    "contact_name": "person name",
    "attendees": ["person name"],
    "time_range": {"start": "RFC3339", "end": "RFC3339"},
    "recurring_pattern": {"frequency": "daily|weekly|monthly|yearly", "interval": integer, "days_of_week": ["monday"], "day_of_month": integer, "end_date": "RFC3339", "occurrences": integer},
    "reminder_time": "RFC3339",
    "reminder_type": "email|sms|push",
    "event_id": "identifier"
  }
}

Omit every entity field the command does not mention. Resolve relative dates against the current time.`

// parseRemote asks the model to parse text, retrying transient failures
// with linear backoff. A 429 records the cool-down deadline for future
// calls but still consumes retry budget here; other 4xx are caller
// mistakes and propagate without retry.
func (uc *implUseCase) parseRemote(ctx context.Context, text string, now time.Time) (nlp.ParsedCommand, error) {
	req := &openai.Request{
		SystemInstruction: systemInstruction,
		Messages: []openai.Message{
			{Role: "user", Content: fmt.Sprintf(parsePromptTemplate, now.Format(time.RFC3339), text)},
		},
		Temperature: remoteTemperature,
		MaxTokens:   remoteMaxTokens,
	}

	var lastErr error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * uc.retryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nlp.ParsedCommand{}, ctx.Err()
			}
		}

		resp, err := uc.llm.ChatCompletion(ctx, req)
		if err != nil {
			if openai.IsRateLimited(err) {
				until := uc.clock().Add(openai.RetryAfter(err))
				uc.recordCooldown(until)
				uc.l.Warnf(ctx, "remote model rate limited, cooling down until %s", until.Format(time.RFC3339))
				lastErr = err
				continue
			}
			if openai.IsClientError(err) {
				return nlp.ParsedCommand{}, err
			}
			lastErr = err
			continue
		}

		cmd, err := decodeReply(resp.Content, text)
		if err != nil {
			uc.l.Warnf(ctx, "remote reply rejected: %v", err)
			lastErr = err
			continue
		}
		return cmd, nil
	}

	return nlp.ParsedCommand{}, lastErr
}

// decodeReply turns the model's raw completion into a validated command.
// Markdown fences are stripped first; JSON that still fails to decode gets
// one repair pass before the attempt is counted as failed.
func decodeReply(content, originalText string) (nlp.ParsedCommand, error) {
	cleaned := sanitizeJSONReply(content)

	var reply remoteReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nlp.ParsedCommand{}, fmt.Errorf("decode remote reply: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &reply); err != nil {
			return nlp.ParsedCommand{}, fmt.Errorf("decode repaired remote reply: %w", err)
		}
	}

	return reply.command(originalText), nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONReply removes markdown code fences and surrounding prose
// that models often wrap around JSON output.
func sanitizeJSONReply(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
