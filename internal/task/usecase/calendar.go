package usecase

import (
	"context"
	"strings"

	"task-master/internal/model"
	"task-master/pkg/gcalendar"
)

// tryCreateCalendarEvent mirrors t as a calendar event starting at its due
// date. Failures are logged and otherwise ignored; the task is already stored.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	description := t.Description
	if t.Notes != "" {
		description += "\n\n" + t.Notes
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: strings.TrimSpace(description),
		StartTime:   t.DueDate,
		EndTime:     t.DueDate.Add(uc.eventDuration),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	uc.l.Infof(ctx, "uc.Create: mirrored task %s to calendar event %s", t.ID, event.ID)
	return event.HtmlLink
}
