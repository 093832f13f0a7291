// Package daily holds the shared daily store (image, quote, today's todos)
// and the weekly todos and targets shown beside it.
package daily

import (
	"errors"
	"strings"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

var (
	ErrTaskRequired  = errors.New("task is required")
	ErrTitleRequired = errors.New("title and description are required")
)

// QuotePreviewLength is how much of the quote the sidebar shows
const QuotePreviewLength = 40

// Store is the single shared daily data store. The sidebar preview and the
// daily panel read the same instance.
type Store struct {
	image string
	quote string
	todos *store.List[model.TodoItem]
}

// NewStore creates the daily store with the default quote and seed todos
func NewStore() *Store {
	return &Store{
		quote: model.DefaultQuote,
		todos: store.NewList(model.SeedDailyTodos()...),
	}
}

// Image returns the daily image data URL, empty when none is set
func (s *Store) Image() string { return s.image }

// SetImage replaces the daily image. An empty value clears it.
func (s *Store) SetImage(dataURL string) { s.image = dataURL }

// Quote returns the daily quote
func (s *Store) Quote() string { return s.quote }

// SetQuote replaces the daily quote
func (s *Store) SetQuote(q string) { s.quote = q }

// QuotePreview returns the first QuotePreviewLength characters of the quote,
// followed by an ellipsis when truncated
func (s *Store) QuotePreview() string {
	r := []rune(s.quote)
	if len(r) <= QuotePreviewLength {
		return s.quote
	}
	return string(r[:QuotePreviewLength]) + "..."
}

// Todos returns the daily todos in order
func (s *Store) Todos() []model.TodoItem { return s.todos.Items() }

// SetTodos replaces every daily todo
func (s *Store) SetTodos(todos []model.TodoItem) { s.todos.Replace(todos) }

// AddTodo appends a daily todo. Blank task text is rejected.
func (s *Store) AddTodo(task string, priority model.Priority) (model.TodoItem, error) {
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
		Type:     model.TodoDaily,
	}
	s.todos.Append(item)
	return item, nil
}

// ToggleTodo flips completion of the todo with the given id
func (s *Store) ToggleTodo(id string) bool {
	return s.todos.Update(id, toggle)
}

// DeleteTodo removes the todo with the given id
func (s *Store) DeleteTodo(id string) bool {
	return s.todos.Delete(id)
}

// Completed returns the number of completed todos and the total
func (s *Store) Completed() (done, total int) {
	return s.todos.Count(isDone), s.todos.Len()
}

func toggle(t model.TodoItem) model.TodoItem {
	t.Completed = !t.Completed
	return t
}

func isDone(t model.TodoItem) bool { return t.Completed }
