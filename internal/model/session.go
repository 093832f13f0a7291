package model

import (
	"time"
)

// StudySession represents a logged focus interval
type StudySession struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Duration  int        `json:"duration"` // Minutes
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Completed bool       `json:"completed"`
}

// Key returns the record id
func (s StudySession) Key() string { return s.ID }

// IsRunning returns true if the session has not been closed yet
func (s StudySession) IsRunning() bool {
	return s.EndTime == nil
}
