package model

// Priority represents todo and event priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists priorities from most to least important
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Weight returns a numeric weight for sorting by priority
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// TodoType separates the daily list from the weekly list
type TodoType string

const (
	TodoDaily  TodoType = "daily"
	TodoWeekly TodoType = "weekly"
)

// TodoItem is a single entry in the daily or weekly task list
type TodoItem struct {
	ID        string   `json:"id"`
	Task      string   `json:"task"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	Type      TodoType `json:"type"`
}

// Key returns the record id
func (t TodoItem) Key() string { return t.ID }

// WeeklyTarget is a longer-running goal on the daily panel
type WeeklyTarget struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"` // Percent, 0-100
	TargetDate  string `json:"targetDate"`
	Category    string `json:"category"`
}

// Key returns the record id
func (w WeeklyTarget) Key() string { return w.ID }
