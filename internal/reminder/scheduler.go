// Package reminder schedules the daily study and goal reminders.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Kind identifies a reminder
type Kind string

const (
	KindStudy Kind = "study"
	KindGoals Kind = "goals"
)

// Scheduler wraps cron-based daily jobs
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
	log  zerolog.Logger
}

// parser matches the six-field layout cron.WithSeconds installs
var parser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// NewScheduler creates a stopped scheduler running jobs in loc
func NewScheduler(loc *time.Location, log zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		loc:  loc,
		log:  log,
	}
}

// ScheduleDaily registers job to run every day at the HH:MM time string
func (s *Scheduler) ScheduleDaily(kind Kind, timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	id, err := s.cron.AddFunc(spec, func() {
		s.log.Debug().Str("reminder", string(kind)).Msg("reminder fired")
		job()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to schedule %s reminder: %w", kind, err)
	}
	s.log.Debug().Str("reminder", string(kind)).Str("spec", spec).Msg("reminder scheduled")
	return id, nil
}

// Entries returns the number of scheduled jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// NextRun returns when a daily HH:MM reminder next fires after now
func NextRun(timeStr string, now time.Time) (time.Time, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	sched, err := parser.Parse(spec)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(now), nil
}

// ValidTime reports whether timeStr is a usable HH:MM reminder time
func ValidTime(timeStr string) bool {
	_, err := buildDailySpec(timeStr)
	return err == nil
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
