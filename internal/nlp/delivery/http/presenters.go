package http

import (
	"time"

	"calendar-assistant/internal/nlp"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type parseResp struct {
	Intent       string       `json:"intent"`
	Entities     entitiesResp `json:"entities"`
	Confidence   float64      `json:"confidence"`
	OriginalText string       `json:"original_text"`
}

type entitiesResp struct {
	Title            *string               `json:"title,omitempty"`
	DateTime         *time.Time            `json:"date_time,omitempty"`
	DurationMinutes  *int                  `json:"duration_minutes,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Description      *string               `json:"description,omitempty"`
	ContactName      *string               `json:"contact_name,omitempty"`
	Attendees        []string              `json:"attendees,omitempty"`
	TimeRange        *timeRangeResp        `json:"time_range,omitempty"`
	RecurringPattern *nlp.RecurringPattern `json:"recurring_pattern,omitempty"`
	ReminderTime     *time.Time            `json:"reminder_time,omitempty"`
	ReminderType     *nlp.ReminderType     `json:"reminder_type,omitempty"`
	EventID          *string               `json:"event_id,omitempty"`
}

type timeRangeResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newParseResp(cmd nlp.ParsedCommand) parseResp {
	resp := parseResp{
		Intent:       string(cmd.Intent),
		Confidence:   cmd.Confidence,
		OriginalText: cmd.OriginalText,
		Entities: entitiesResp{
			Title:            cmd.Entities.Title,
			DateTime:         cmd.Entities.DateTime,
			DurationMinutes:  cmd.Entities.DurationMinutes,
			Location:         cmd.Entities.Location,
			Description:      cmd.Entities.Description,
			ContactName:      cmd.Entities.ContactName,
			Attendees:        cmd.Entities.Attendees,
			RecurringPattern: cmd.Entities.RecurringPattern,
			ReminderTime:     cmd.Entities.ReminderTime,
			ReminderType:     cmd.Entities.ReminderType,
			EventID:          cmd.Entities.EventID,
		},
	}
	if cmd.Entities.TimeRange != nil {
		resp.Entities.TimeRange = &timeRangeResp{
			Start: cmd.Entities.TimeRange.Start,
			End:   cmd.Entities.TimeRange.End,
		}
	}
	return resp
}
