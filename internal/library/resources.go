// Package library holds the study resource library and the saved study
// session videos.
package library

import (
	"errors"
	"strings"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

// NewResourceSize is the size label given to resources added by hand
const NewResourceSize = "0 MB"

// FilterAll disables a subject, type or exam filter
const FilterAll = "all"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrURLRequired   = errors.New("title and url are required")
)

// NewResource holds the add-resource form values
type NewResource struct {
	Title       string
	Type        model.ResourceType
	Subject     model.Subject
	ExamType    model.ExamType
	Description string
	Tags        string // Comma separated
	URL         string
}

// Query narrows the resource list. Empty or FilterAll fields match everything.
type Query struct {
	Search   string
	Subject  string
	Type     string
	ExamType string
	Favorite bool // Only favorites
}

// Resources is the study resource library
type Resources struct {
	items *store.List[model.Resource]
	now   func() time.Time
}

// NewResources creates the library with the given records
func NewResources(now func() time.Time, items ...model.Resource) *Resources {
	if now == nil {
		now = time.Now
	}
	return &Resources{items: store.NewList(items...), now: now}
}

// All returns every resource, newest first
func (r *Resources) All() []model.Resource { return r.items.Items() }

// Add prepends a resource stamped with today's date
func (r *Resources) Add(in NewResource) (model.Resource, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Resource{}, ErrTitleRequired
	}
	res := model.Resource{
		ID:          model.NewID(),
		Title:       title,
		Type:        orDefault(in.Type, model.ResourceTypes),
		Subject:     orDefault(in.Subject, model.Subjects),
		ExamType:    orDefault(in.ExamType, model.ExamTypes),
		Description: strings.TrimSpace(in.Description),
		UploadDate:  model.Today(r.now()),
		Size:        NewResourceSize,
		Tags:        model.SplitTags(in.Tags),
		URL:         strings.TrimSpace(in.URL),
	}
	r.items.Prepend(res)
	return res, nil
}

// ToggleFavorite flips the favorite flag of the resource with the given id
func (r *Resources) ToggleFavorite(id string) bool {
	return r.items.Update(id, func(res model.Resource) model.Resource {
		res.Favorite = !res.Favorite
		return res
	})
}

// Delete removes the resource with the given id
func (r *Resources) Delete(id string) bool {
	return r.items.Delete(id)
}

// Filter returns the resources matching q in library order. A resource
// tagged for both exams matches any exam filter.
func (r *Resources) Filter(q Query) []model.Resource {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	return r.items.Filter(func(res model.Resource) bool {
		if q.Favorite && !res.Favorite {
			return false
		}
		if !matchesField(q.Subject, string(res.Subject)) || !matchesField(q.Type, string(res.Type)) {
			return false
		}
		if !matchesField(q.ExamType, string(res.ExamType)) && res.ExamType != model.ExamBoth {
			return false
		}
		return search == "" || matchesSearch(res, search)
	})
}

// Favorites returns the number of favorite resources
func (r *Resources) Favorites() int {
	return r.items.Count(func(res model.Resource) bool { return res.Favorite })
}

func matchesField(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

func matchesSearch(res model.Resource, search string) bool {
	if strings.Contains(strings.ToLower(res.Title), search) ||
		strings.Contains(strings.ToLower(res.Description), search) {
		return true
	}
	for _, tag := range res.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func orDefault[T comparable](v T, allowed []T) T {
	for _, a := range allowed {
		if a == v {
			return v
		}
	}
	return allowed[0]
}
