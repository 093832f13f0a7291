package library

import (
	"strings"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

// NewVideo holds the add-video form values
type NewVideo struct {
	Title       string
	URL         string
	Duration    string
	Description string
}

// Videos is the list of saved study session recordings
type Videos struct {
	items *store.List[model.StudyVideo]
	now   func() time.Time
}

// NewVideos creates the video list with the given records
func NewVideos(now func() time.Time, items ...model.StudyVideo) *Videos {
	if now == nil {
		now = time.Now
	}
	return &Videos{items: store.NewList(items...), now: now}
}

// All returns every video, newest first
func (v *Videos) All() []model.StudyVideo { return v.items.Items() }

// Add prepends a video dated today. Title and URL are required.
func (v *Videos) Add(in NewVideo) (model.StudyVideo, error) {
	title := strings.TrimSpace(in.Title)
	url := strings.TrimSpace(in.URL)
	if title == "" || url == "" {
		return model.StudyVideo{}, ErrURLRequired
	}
	video := model.StudyVideo{
		ID:          model.NewID(),
		Title:       title,
		URL:         url,
		Duration:    strings.TrimSpace(in.Duration),
		Description: strings.TrimSpace(in.Description),
		Date:        model.Today(v.now()),
	}
	v.items.Prepend(video)
	return video, nil
}

// Delete removes the video with the given id
func (v *Videos) Delete(id string) bool {
	return v.items.Delete(id)
}

// Search returns videos whose title or description contains term,
// case-insensitively
func (v *Videos) Search(term string) []model.StudyVideo {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return v.All()
	}
	return v.items.Filter(func(video model.StudyVideo) bool {
		return strings.Contains(strings.ToLower(video.Title), term) ||
			strings.Contains(strings.ToLower(video.Description), term)
	})
}
