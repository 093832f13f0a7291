package views

import (
	"time"

	"github.com/dori/studydeck/internal/app"
	"github.com/dori/studydeck/internal/calendar"
	"github.com/dori/studydeck/internal/community"
	"github.com/dori/studydeck/internal/daily"
	"github.com/dori/studydeck/internal/focus"
	"github.com/dori/studydeck/internal/library"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/profile"
	"github.com/dori/studydeck/internal/settings"
)

// Deps is the panel state shared between views. Every field is a pointer so
// value-typed views mutate the same records.
type Deps struct {
	App       *app.App
	Daily     *daily.Store
	Weekly    *daily.Weekly
	Timer     *focus.Timer
	Stopwatch *focus.Stopwatch
	Calendar  *calendar.Calendar
	Resources *library.Resources
	Videos    *library.Videos
	Feed      *community.Feed
	Profile   *profile.Profile
	Now       func() time.Time
}

// NewDeps builds seeded panel state. The timer starts from the study
// defaults in s.
func NewDeps(a *app.App, s settings.Settings, now func() time.Time) Deps {
	if now == nil {
		now = time.Now
	}
	d := daily.NewStore()
	return Deps{
		App:       a,
		Daily:     d,
		Weekly:    daily.NewWeekly(),
		Timer:     focus.NewTimer(s.StudySettings.DefaultFocusTime, s.StudySettings.DefaultBreakTime, focus.WithClock(now)),
		Stopwatch: &focus.Stopwatch{},
		Calendar:  calendar.New(model.SeedEvents()...),
		Resources: library.NewResources(now, model.SeedResources()...),
		Videos:    library.NewVideos(now, model.SeedVideos()...),
		Feed:      community.NewFeed(now, model.SeedPosts()...),
		Profile:   profile.New(),
		Now:       now,
	}
}

// Settings returns the live settings, or the defaults when no app is wired
func (d Deps) Settings() settings.Settings {
	if d.App == nil {
		return settings.Defaults()
	}
	return d.App.Settings
}
