package http

import (
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/gcalendar"
)

// --- Request DTOs ---

type commandReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type eventResp struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	Attendees []string  `json:"attendees,omitempty"`
	HtmlLink  string    `json:"html_link,omitempty"`
}

func newEventResp(e gcalendar.Event) eventResp {
	return eventResp{
		ID:        e.ID,
		Summary:   e.Summary,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Location:  e.Location,
		Attendees: e.Attendees,
		HtmlLink:  e.HtmlLink,
	}
}

type commandResp struct {
	Intent     string      `json:"intent"`
	Confidence float64     `json:"confidence"`
	Created    *eventResp  `json:"created,omitempty"`
	Updated    *eventResp  `json:"updated,omitempty"`
	Events     []eventResp `json:"events,omitempty"`
	Deleted    bool        `json:"deleted,omitempty"`
}

func newCommandResp(cmd nlp.ParsedCommand, out calendar.Output) commandResp {
	resp := commandResp{
		Intent:     string(cmd.Intent),
		Confidence: cmd.Confidence,
		Deleted:    out.Deleted,
	}
	if out.Created != nil {
		created := newEventResp(*out.Created)
		resp.Created = &created
	}
	if out.Updated != nil {
		updated := newEventResp(*out.Updated)
		resp.Updated = &updated
	}
	for _, e := range out.Events {
		resp.Events = append(resp.Events, newEventResp(e))
	}
	return resp
}
