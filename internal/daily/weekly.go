package daily

import (
	"strings"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

// Weekly holds the weekly todo list and the weekly targets
type Weekly struct {
	todos   *store.List[model.TodoItem]
	targets *store.List[model.WeeklyTarget]
}

// NewWeekly creates the weekly lists with their seed data
func NewWeekly() *Weekly {
	return &Weekly{
		todos:   store.NewList(model.SeedWeeklyTodos()...),
		targets: store.NewList[model.WeeklyTarget](),
	}
}

// Todos returns the weekly todos in order
func (w *Weekly) Todos() []model.TodoItem { return w.todos.Items() }

// AddTodo appends a weekly todo
func (w *Weekly) AddTodo(task string, priority model.Priority) (model.TodoItem, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return model.TodoItem{}, ErrTaskRequired
	}
	if !priority.Valid() {
		priority = model.PriorityMedium
	}
	item := model.TodoItem{
		ID:       model.NewID(),
		Task:     task,
		Priority: priority,
		Type:     model.TodoWeekly,
	}
	w.todos.Append(item)
	return item, nil
}

func (w *Weekly) ToggleTodo(id string) bool { return w.todos.Update(id, toggle) }
func (w *Weekly) DeleteTodo(id string) bool { return w.todos.Delete(id) }

// Completed returns the number of completed weekly todos and the total
func (w *Weekly) Completed() (done, total int) {
	return w.todos.Count(isDone), w.todos.Len()
}

// Targets returns the weekly targets in order
func (w *Weekly) Targets() []model.WeeklyTarget { return w.targets.Items() }

// AddTarget appends a weekly target at 0% progress. Title and description
// are both required.
func (w *Weekly) AddTarget(title, description, targetDate, category string) (model.WeeklyTarget, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return model.WeeklyTarget{}, ErrTitleRequired
	}
	t := model.WeeklyTarget{
		ID:          model.NewID(),
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
		Category:    strings.TrimSpace(category),
	}
	w.targets.Append(t)
	return t, nil
}

// AdjustProgress moves a target's progress by delta percent, clamped to 0-100
func (w *Weekly) AdjustProgress(id string, delta int) bool {
	return w.targets.Update(id, func(t model.WeeklyTarget) model.WeeklyTarget {
		t.Progress = clampPercent(t.Progress + delta)
		return t
	})
}

// DeleteTarget removes the target with the given id
func (w *Weekly) DeleteTarget(id string) bool { return w.targets.Delete(id) }

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
