// Package notify runs the daily birthday reminder pass. The scheduler is an
// explicitly constructed collaborator: it reads the store, never mutates it,
// and hands the resulting notification to a pluggable sink.
package notify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/recur"
	"github.com/dmathew/go-giftsmart/internal/store"
)

// Notification is a single reminder about today's birthdays.
type Notification struct {
	Title string
	Body  string
	Count int
}

// Notifier is the delivery sink. Desktop or mobile shells plug in here;
// the default writes to the structured log.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier emits notifications through slog.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(n Notification) {
	slog.Info(config.MsgReminderSent,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyName, n.Title,
		config.LogKeyValue, n.Body,
		config.LogKeyCount, n.Count,
	)
}

// Scheduler triggers the reminder pass on a cron schedule.
type Scheduler struct {
	Store    *store.Store
	Clock    recur.Clock
	Notifier Notifier

	// FormatTitle and FormatBody localize the notification text.
	// Nil hooks fall back to the English defaults.
	FormatTitle func() string
	FormatBody  func(names string) string

	cron *cron.Cron
}

// Start registers the daily pass under spec and launches the cron runner.
func (s *Scheduler) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.RunOnce); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCronSpec, err)
	}
	s.cron = c
	c.Start()

	slog.Info(config.MsgSchedulerStart,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeySchedule, spec,
	)
	return nil
}

// Stop halts the cron runner and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	slog.Info(config.MsgSchedulerStop, config.LogKeyComponent, config.CompNotify)
}

// RunOnce performs a single reminder pass: collect today's birthdays and
// emit one notification naming all of them. No birthdays, no notification.
func (s *Scheduler) RunOnce() {
	now := s.Clock.Now()
	var names []string
	for _, e := range s.Store.Entries() {
		if recur.IsAnniversaryToday(e.Date, now) {
			names = append(names, e.Name)
		}
	}

	slog.Debug(config.MsgReminderPass,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyToday, len(names),
	)

	if len(names) == 0 {
		slog.Debug(config.MsgReminderSkip, config.LogKeyComponent, config.CompNotify)
		return
	}

	joined := strings.Join(names, config.NameListSeparator)

	title := config.FallbackNotifTitle
	if s.FormatTitle != nil {
		title = s.FormatTitle()
	}
	body := fmt.Sprintf(config.FallbackNotifBody, joined)
	if s.FormatBody != nil {
		body = s.FormatBody(joined)
	}

	s.Notifier.Notify(Notification{
		Title: title,
		Body:  body,
		Count: len(names),
	})
}
