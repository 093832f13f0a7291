package library

import (
	"testing"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 30, 10, 0, 0, 0, time.Local)
}

func titles(rs []model.Resource) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Title)
	}
	return out
}

func TestAddResource(t *testing.T) {
	lib := NewResources(fixedNow, model.SeedResources()...)

	_, err := lib.Add(NewResource{Title: " "})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Len(t, lib.All(), 3)

	res, err := lib.Add(NewResource{
		Title:    "Optics Cheatsheet",
		Type:     model.ResourceNotes,
		Subject:  model.SubjectPhysics,
		ExamType: model.ExamNEET,
		Tags:     " optics, ,lenses ,",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-30", res.UploadDate)
	assert.Equal(t, NewResourceSize, res.Size)
	assert.Equal(t, []string{"optics", "lenses"}, res.Tags)
	assert.False(t, res.Favorite)
	assert.Equal(t, res, lib.All()[0])
}

func TestAddResourceDefaultsUnknownEnums(t *testing.T) {
	lib := NewResources(fixedNow)
	res, err := lib.Add(NewResource{Title: "x", Type: "pdf", Subject: "art", ExamType: "sat"})
	require.NoError(t, err)
	assert.Equal(t, model.ResourceNotes, res.Type)
	assert.Equal(t, model.SubjectPhysics, res.Subject)
	assert.Equal(t, model.ExamJEE, res.ExamType)
}

func TestToggleFavoriteAndDelete(t *testing.T) {
	lib := NewResources(fixedNow, model.SeedResources()...)
	all := lib.All()
	assert.Equal(t, 2, lib.Favorites())

	require.True(t, lib.ToggleFavorite(all[1].ID))
	assert.True(t, lib.All()[1].Favorite)
	assert.Equal(t, 3, lib.Favorites())

	require.True(t, lib.Delete(all[0].ID))
	assert.Equal(t, all[1].ID, lib.All()[0].ID)
	assert.False(t, lib.Delete("missing"))
	assert.Len(t, lib.All(), 2)
}

func TestFilter(t *testing.T) {
	lib := NewResources(fixedNow, model.SeedResources()...)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"no filter", Query{}, []string{"Thermodynamics Complete Notes", "Organic Chemistry Reaction Mechanisms", "JEE Advanced Mock Test 2024"}},
		{"all is no filter", Query{Subject: FilterAll, Type: FilterAll, ExamType: FilterAll}, []string{"Thermodynamics Complete Notes", "Organic Chemistry Reaction Mechanisms", "JEE Advanced Mock Test 2024"}},
		{"search title case-insensitive", Query{Search: "THERMO"}, []string{"Thermodynamics Complete Notes"}},
		{"search description", Query{Search: "solutions"}, []string{"JEE Advanced Mock Test 2024"}},
		{"search tag", Query{Search: "mechanisms"}, []string{"Organic Chemistry Reaction Mechanisms"}},
		{"subject", Query{Subject: "chemistry"}, []string{"Organic Chemistry Reaction Mechanisms"}},
		{"type", Query{Type: "question-paper"}, []string{"JEE Advanced Mock Test 2024"}},
		{"neet includes both", Query{ExamType: "neet"}, []string{"Organic Chemistry Reaction Mechanisms"}},
		{"jee includes both", Query{ExamType: "jee"}, []string{"Thermodynamics Complete Notes", "Organic Chemistry Reaction Mechanisms", "JEE Advanced Mock Test 2024"}},
		{"favorites", Query{Favorite: true}, []string{"Thermodynamics Complete Notes", "JEE Advanced Mock Test 2024"}},
		{"combined", Query{Search: "test", Subject: "physics"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(lib.Filter(tt.query)))
		})
	}
}

func TestVideos(t *testing.T) {
	v := NewVideos(fixedNow, model.SeedVideos()...)

	_, err := v.Add(NewVideo{Title: "No link"})
	assert.ErrorIs(t, err, ErrURLRequired)
	_, err = v.Add(NewVideo{URL: "https://youtube.com/watch?v=x"})
	assert.ErrorIs(t, err, ErrURLRequired)
	assert.Len(t, v.All(), 2)

	video, err := v.Add(NewVideo{Title: "Organic marathon", URL: "https://youtube.com/watch?v=x", Duration: "3h"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-30", video.Date)
	assert.Equal(t, video, v.All()[0])

	assert.Len(t, v.Search("QUANTUM"), 1)
	assert.Len(t, v.Search("organic"), 1)
	assert.Len(t, v.Search(""), 3)

	require.True(t, v.Delete(video.ID))
	assert.Len(t, v.All(), 2)
}
