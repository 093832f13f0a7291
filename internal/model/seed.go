package model

// Seed data shown on first launch. Every call returns fresh records with
// fresh ids so panels never share backing arrays.

// DefaultQuote is the daily quote before the student sets one
const DefaultQuote = "Success is not final, failure is not fatal: it is the courage to continue that counts."

func SeedDailyTodos() []TodoItem {
	return []TodoItem{
		{ID: NewID(), Task: "Complete Physics Chapter 15", Completed: true, Priority: PriorityHigh, Type: TodoDaily},
		{ID: NewID(), Task: "Solve 30 Chemistry MCQs", Priority: PriorityMedium, Type: TodoDaily},
		{ID: NewID(), Task: "Review Math formulas", Priority: PriorityMedium, Type: TodoDaily},
	}
}

func SeedWeeklyTodos() []TodoItem {
	return []TodoItem{
		{ID: NewID(), Task: "Complete all Physics chapters 13-16", Priority: PriorityHigh, Type: TodoWeekly},
		{ID: NewID(), Task: "Finish Chemistry organic reactions", Priority: PriorityHigh, Type: TodoWeekly},
		{ID: NewID(), Task: "Practice 200 Math problems", Completed: true, Priority: PriorityMedium, Type: TodoWeekly},
	}
}

func SeedEvents() []CalendarEvent {
	return []CalendarEvent{
		{ID: NewID(), Title: "Physics Mock Test", Date: "2024-01-25", Type: EventMockTest, Priority: PriorityHigh,
			Description: "Full-length JEE Advanced Physics mock test"},
		{ID: NewID(), Title: "Chemistry Chapter 12 Revision", Date: "2024-01-26", Type: EventRevision, Priority: PriorityMedium,
			Description: "Complete revision of Organic Chemistry reactions"},
		{ID: NewID(), Title: "Math Assignment Submission", Date: "2024-01-28", Type: EventDeadline, Priority: PriorityHigh,
			Description: "Submit calculus assignment", Completed: true},
	}
}

func SeedResources() []Resource {
	return []Resource{
		{ID: NewID(), Title: "Thermodynamics Complete Notes", Type: ResourceNotes, Subject: SubjectPhysics, ExamType: ExamJEE,
			Description: "Comprehensive notes covering all thermodynamics concepts for JEE Advanced",
			UploadDate:  "2024-01-15", Size: "2.5 MB", Favorite: true, Tags: []string{"thermodynamics", "heat", "entropy"}},
		{ID: NewID(), Title: "Organic Chemistry Reaction Mechanisms", Type: ResourceBook, Subject: SubjectChemistry, ExamType: ExamBoth,
			Description: "Detailed book on organic reaction mechanisms with examples",
			UploadDate:  "2024-01-10", Size: "15.2 MB", Tags: []string{"organic", "reactions", "mechanisms"}},
		{ID: NewID(), Title: "JEE Advanced Mock Test 2024", Type: ResourceQuestionPaper, Subject: SubjectGeneral, ExamType: ExamJEE,
			Description: "Full-length mock test with solutions",
			UploadDate:  "2024-01-20", Size: "1.8 MB", Favorite: true, Tags: []string{"mock-test", "jee", "practice"}},
	}
}

func SeedVideos() []StudyVideo {
	return []StudyVideo{
		{ID: NewID(), Title: "Math Study Session - Calculus", Description: "Deep dive into derivatives and integrals",
			URL: "https://youtube.com/watch?v=example1", Duration: "2h 30m", Date: "2024-01-15"},
		{ID: NewID(), Title: "Physics Lab Review", Description: "Going through quantum mechanics problems",
			URL: "https://youtube.com/watch?v=example2", Duration: "1h 45m", Date: "2024-01-14"},
	}
}

func SeedPosts() []CommunityPost {
	return []CommunityPost{
		{ID: NewID(), Type: PostQuote, Date: "2024-01-25", Likes: 15, Author: "Alex Chen",
			Content: "The sky is not the limit, it's just the beginning. Today I conquered thermodynamics!",
			Comments: []Comment{
				{ID: NewID(), Text: "Great motivation!", Date: "2024-01-25", Author: "Study Buddy"},
				{ID: NewID(), Text: "Keep it up!", Date: "2024-01-25", Author: "Mentor"},
			},
			Tags: []string{"motivation", "physics", "thermodynamics"}},
		{ID: NewID(), Type: PostAchievement, Date: "2024-01-24", Likes: 28, Author: "Jordan Smith",
			Content:  "Completed 4 hours of focused study today! Physics mock test score: 85%",
			Comments: []Comment{{ID: NewID(), Text: "Amazing progress!", Date: "2024-01-24", Author: "Sarah"}},
			Tags:     []string{"achievement", "physics", "mock-test"}},
		{ID: NewID(), Type: PostDiscussion, Date: "2024-01-23", Likes: 12, Author: "Taylor Johnson",
			Content: "Anyone else struggling with organic chemistry reactions? Looking for study partners!",
			Comments: []Comment{
				{ID: NewID(), Text: "I'm in! Let's form a study group", Date: "2024-01-23", Author: "Emma"},
				{ID: NewID(), Text: "Count me in too!", Date: "2024-01-23", Author: "Mike"},
			},
			Tags: []string{"chemistry", "study-group", "help"}},
	}
}

func SeedProfile() Profile {
	return Profile{
		Name:              "Student",
		Email:             "student@example.com",
		JoinDate:          "January 2024",
		StudyStreak:       15,
		TotalStudyHours:   219,
		CompletedSubjects: 2,
		AverageScore:      78,
	}
}

func SeedAchievements() []Achievement {
	return []Achievement{
		{ID: NewID(), Title: "Study Streak Master", Description: "Maintained 15-day study streak", Date: "2024-01-25", Type: AchievementStreak},
		{ID: NewID(), Title: "Physics Champion", Description: "Scored 90% in Physics mock test", Date: "2024-01-20", Type: AchievementExam},
		{ID: NewID(), Title: "100 Hours Milestone", Description: "Completed 100 hours of study", Date: "2024-01-15", Type: AchievementMilestone},
	}
}

func SeedSubjects() []SubjectProgress {
	return []SubjectProgress{
		{Name: "Mathematics", HoursCompleted: 75, TotalHours: 100},
		{Name: "Physics", HoursCompleted: 48, TotalHours: 80},
		{Name: "Chemistry", HoursCompleted: 40, TotalHours: 90},
		{Name: "Biology", HoursCompleted: 56, TotalHours: 70},
	}
}

func SeedMonthlyGoals() []MonthlyGoal {
	return []MonthlyGoal{
		{Name: "Study Hours This Month", Current: 89, Target: 120, Unit: "hours", DueDate: "31/01/2024"},
		{Name: "Practice Problems Solved", Current: 342, Target: 500, Unit: "problems", DueDate: "31/01/2024"},
		{Name: "Mock Tests Completed", Current: 7, Target: 10, Unit: "tests", DueDate: "31/01/2024"},
	}
}
