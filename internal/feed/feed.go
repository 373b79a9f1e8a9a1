// Package feed renders the birthday collection as an iCalendar object so
// any calendar client can subscribe to the tracked birthdays.
package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/recur"
	"github.com/dmathew/go-giftsmart/internal/store"
)

// Builder renders store entries into an ICS byte stream.
type Builder struct {
	Clock recur.Clock

	// ReminderTrigger is an ISO8601 duration (e.g. "-P1D") attached as a
	// DISPLAY alarm to every event. Empty disables alarms.
	ReminderTrigger string

	// FormatSummary lets the caller localize event titles.
	FormatSummary func(name string) string
}

// Render produces the calendar for the given entries. It returns the encoded
// bytes and the number of entries whose anniversary is today.
func (b *Builder) Render(entries []store.Entry) ([]byte, int, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval to subscribing clients.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Birthdays are local calendar dates; only the DTSTAMP is in UTC.
	now := b.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	today := 0
	for _, e := range entries {
		if recur.IsAnniversaryToday(e.Date, now) {
			today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyName, e.Name,
				config.LogKeyDOB, e.Date.Format(config.DateFormatFullDash),
			)
		}

		for _, evt := range b.events(e, now) {
			evt.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, evt.Component)
		}
	}

	if len(cal.Children) == 0 {
		// A calendar with zero components is rejected by some clients;
		// return the constant stub instead.
		slog.Debug(config.MsgFeedUpdated,
			config.LogKeyComponent, config.CompFeed,
			config.LogKeyCount, 0,
		)
		return []byte(config.StubVCalendar), today, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyCount, len(entries),
		config.LogKeyToday, today,
	)
	return buf.Bytes(), today, nil
}

// events generates the entry's occurrences for last year, this year, and
// next year, so calendar clients that scroll have events without an
// immediate re-sync.
func (b *Builder) events(e store.Entry, now time.Time) []*ical.Event {
	targetYears := []int{now.Year() - 1, now.Year(), now.Year() + 1}
	loc := now.Location()

	summary := fmt.Sprintf(config.FallbackSummary, e.Name)
	if b.FormatSummary != nil {
		summary = b.FormatSummary(e.Name)
	}

	events := make([]*ical.Event, 0, len(targetYears))
	for _, y := range targetYears {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.ID, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years, matching
		// the recurrence engine's documented fallback.
		eventDate := time.Date(y, e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, loc)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if b.ReminderTrigger != "" {
			addAlarm(event, b.ReminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a "VALUE=TEXT" param.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
