package profile

import (
	"testing"

	"github.com/dori/studydeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdit(t *testing.T) {
	p := New()
	before := p.Record()

	assert.ErrorIs(t, p.Edit(" ", "a@b.c"), ErrNameRequired)
	assert.ErrorIs(t, p.Edit("Asha", ""), ErrEmailRequired)
	assert.Equal(t, before, p.Record())

	require.NoError(t, p.Edit(" Asha Rao ", "asha@example.com"))
	assert.Equal(t, "Asha Rao", p.Record().Name)
	assert.Equal(t, "asha@example.com", p.Record().Email)
	assert.Equal(t, before.StudyStreak, p.Record().StudyStreak)
	assert.Equal(t, "AR", p.Initials())
}

func TestStudyHours(t *testing.T) {
	p := New()
	base := p.Record().TotalStudyHours
	assert.Equal(t, base, p.StudyHours(0))
	assert.Equal(t, base, p.StudyHours(59))
	assert.Equal(t, base+2, p.StudyHours(125))
}

func TestAward(t *testing.T) {
	p := New()
	p.Award(model.Achievement{Title: "First Focus", Type: model.AchievementStudy})

	got := p.Achievements()
	require.Len(t, got, 4)
	assert.Equal(t, "First Focus", got[0].Title)
	assert.NotEmpty(t, got[0].ID)
}
