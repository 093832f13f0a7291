// Package profile holds the student profile shown on the profile panel.
package profile

import (
	"errors"
	"strings"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// Profile is the profile record plus its achievements
type Profile struct {
	record       model.Profile
	achievements *store.List[model.Achievement]
}

// New creates a profile from the seed record and achievements
func New() *Profile {
	return &Profile{
		record:       model.SeedProfile(),
		achievements: store.NewList(model.SeedAchievements()...),
	}
}

// Record returns the profile record
func (p *Profile) Record() model.Profile { return p.record }

// Edit replaces name and email. Both must be non-blank; on error the
// profile is left unchanged.
func (p *Profile) Edit(name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return ErrNameRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	p.record.Name = name
	p.record.Email = email
	return nil
}

// Achievements returns the achievements, newest first
func (p *Profile) Achievements() []model.Achievement { return p.achievements.Items() }

// Award prepends an achievement
func (p *Profile) Award(a model.Achievement) {
	if a.ID == "" {
		a.ID = model.NewID()
	}
	p.achievements.Prepend(a)
}

// StudyHours returns the recorded study hours plus whole hours of focus
// time completed in this run
func (p *Profile) StudyHours(focusMinutes int) int {
	return p.record.TotalStudyHours + focusMinutes/60
}

// Initials returns up to two initials for the avatar
func (p *Profile) Initials() string {
	var out []rune
	for _, word := range strings.Fields(p.record.Name) {
		out = append(out, []rune(strings.ToUpper(word))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
