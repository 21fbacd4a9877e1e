package extract_test

import (
	"fmt"
	"testing"
	"time"

	"calendar-assistant/internal/nlp/extract"
)

// Wednesday, May 14 2025, 10:30 local.
var now = time.Date(2025, 5, 14, 10, 30, 0, 0, time.UTC)

func TestDateTimeExplicitClock(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantHour   int
		wantMinute int
	}{
		{"at 2pm", "meeting at 2pm", 14, 0},
		{"at 2:30pm", "meeting at 2:30pm", 14, 30},
		{"at 9am", "standup at 9am", 9, 0},
		{"12pm is noon", "lunch at 12pm", 12, 0},
		{"12am is midnight", "deploy at 12am", 0, 0},
		{"24-hour clock", "meeting at 14:00", 14, 0},
		{"bare pm", "meeting tomorrow 3pm", 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.DateTime(tt.text, now)
			if got == nil {
				t.Fatalf("DateTime(%q) = nil", tt.text)
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMinute {
				t.Errorf("DateTime(%q) = %02d:%02d, want %02d:%02d",
					tt.text, got.Hour(), got.Minute(), tt.wantHour, tt.wantMinute)
			}
		})
	}
}

// Round-tripping the resolved hour back to 12-hour form must reproduce the
// input hour and period.
func TestDateTimeTwelveHourRoundTrip(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		for _, period := range []string{"am", "pm"} {
			text := fmt.Sprintf("meeting at %d%s", hour, period)
			got := extract.DateTime(text, now)
			if got == nil {
				t.Fatalf("DateTime(%q) = nil", text)
			}
			if formatted := got.Format("3pm"); formatted != fmt.Sprintf("%d%s", hour, period) {
				t.Errorf("DateTime(%q) resolved to hour %d, formats back as %q", text, got.Hour(), formatted)
			}
		}
	}
}

func TestDateTimeDateCues(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDate time.Time
	}{
		{"tomorrow", "meeting tomorrow at 2pm", now.AddDate(0, 0, 1)},
		{"today", "call today at 4pm", now},
		{"next friday", "review next friday", now.AddDate(0, 0, 2)},
		// "next Wednesday" said on a Wednesday is a week out, never today.
		{"next wednesday on wednesday", "sync next wednesday", now.AddDate(0, 0, 7)},
		{"bare weekday", "lunch on friday", now.AddDate(0, 0, 2)},
		{"in 3 days", "demo in 3 days", now.AddDate(0, 0, 3)},
		{"in 2 weeks", "review in 2 weeks", now.AddDate(0, 0, 14)},
		{"numeric date", "dentist on 5/20 at 8am", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.DateTime(tt.text, now)
			if got == nil {
				t.Fatalf("DateTime(%q) = nil", tt.text)
			}
			gy, gm, gd := got.Date()
			wy, wm, wd := tt.wantDate.Date()
			if gy != wy || gm != wm || gd != wd {
				t.Errorf("DateTime(%q) date = %04d-%02d-%02d, want %04d-%02d-%02d",
					tt.text, gy, gm, gd, wy, wm, wd)
			}
		})
	}
}

func TestDateTimeTimeOnlyAnchorsToReferenceDay(t *testing.T) {
	got := extract.DateTime("call me at 5pm", now)
	if got == nil {
		t.Fatalf("expected a resolved instant")
	}
	want := time.Date(2025, 5, 14, 17, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeNoMatch(t *testing.T) {
	for _, text := range []string{"hello there", "what can you do", ""} {
		if got := extract.DateTime(text, now); got != nil {
			t.Errorf("DateTime(%q) = %v, want nil", text, got)
		}
	}
}
