package gcalendar

import "time"

// DefaultCalendarID addresses the authorized account's main calendar.
const DefaultCalendarID = "primary"

// DefaultTokenPath is where the installed-app OAuth token is kept.
const DefaultTokenPath = "token.json"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	HtmlLink    string    `json:"html_link,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AllDay      bool      `json:"all_day,omitempty"`
}

// ListEventsRequest is the input for listing events in a time window.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
