package model

// AchievementType categorizes profile achievements
type AchievementType string

const (
	AchievementStudy     AchievementType = "study"
	AchievementExam      AchievementType = "exam"
	AchievementStreak    AchievementType = "streak"
	AchievementMilestone AchievementType = "milestone"
)

// Achievement is a badge shown on the profile panel
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Type        AchievementType `json:"type"`
}

// Key returns the record id
func (a Achievement) Key() string { return a.ID }

// Profile holds the student's account details and headline stats
type Profile struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	JoinDate          string `json:"joinDate"`
	StudyStreak       int    `json:"studyStreak"`
	TotalStudyHours   int    `json:"totalStudyHours"`
	CompletedSubjects int    `json:"completedSubjects"`
	AverageScore      int    `json:"averageScore"`
}

// SubjectProgress is one row of the per-subject progress panel
type SubjectProgress struct {
	Name           string
	HoursCompleted int
	TotalHours     int
}

// Percent returns completed hours as a percentage of the total
func (s SubjectProgress) Percent() int {
	if s.TotalHours <= 0 {
		return 0
	}
	return s.HoursCompleted * 100 / s.TotalHours
}

// MonthlyGoal is one row of the monthly goals panel
type MonthlyGoal struct {
	Name    string
	Current int
	Target  int
	Unit    string
	DueDate string
}

// Percent returns progress toward the target as a percentage
func (g MonthlyGoal) Percent() int {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current * 100 / g.Target
	if p > 100 {
		p = 100
	}
	return p
}
