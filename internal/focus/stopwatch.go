package focus

import "fmt"

// Stopwatch counts elapsed seconds while running. It is independent of the
// Timer and never produces session records.
type Stopwatch struct {
	elapsed int
	active  bool
}

// Start resumes counting
func (s *Stopwatch) Start() { s.active = true }

// Pause stops counting and keeps the elapsed time
func (s *Stopwatch) Pause() { s.active = false }

// Reset stops counting and clears the elapsed time
func (s *Stopwatch) Reset() {
	s.active = false
	s.elapsed = 0
}

// Toggle starts a paused stopwatch or pauses a running one
func (s *Stopwatch) Toggle() {
	s.active = !s.active
}

// Tick adds one second while running
func (s *Stopwatch) Tick() {
	if s.active {
		s.elapsed++
	}
}

// Active reports whether the stopwatch is counting
func (s *Stopwatch) Active() bool { return s.active }

// Elapsed returns the elapsed seconds
func (s *Stopwatch) Elapsed() int { return s.elapsed }

// Display renders the elapsed time as HH:MM:SS
func (s *Stopwatch) Display() string {
	h := s.elapsed / 3600
	m := (s.elapsed % 3600) / 60
	sec := s.elapsed % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
