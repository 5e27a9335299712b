package model

// Sheet titles inside the backing spreadsheet. The positional column layout
// below is the interop contract with the existing store and must not change.
const (
	SheetStudyTasks       = "StudyTasks"
	SheetStudySessions    = "StudySessions"
	SheetPomodoroSessions = "Pomodoro_Sessions"
	SheetSubjects         = "Subjects"
	SheetCategories       = "Categories"
	SheetUserStats        = "User_Stats"
	SheetAchievements     = "Achievements"
	SheetSettings         = "Settings"
)

// SheetHeaders maps each sheet to its ordered header row.
var SheetHeaders = map[string][]string{
	SheetStudyTasks: {
		"task_id", "task_name", "description", "categories", "correctly_completed",
		"start_time", "end_time", "location", "subject", "session_id",
	},
	SheetStudySessions: {
		"session_id", "start_time", "end_time", "duration_minutes",
		"total_tasks", "correct_tasks", "accuracy_percentage", "notes",
	},
	SheetPomodoroSessions: {
		"session_id", "start_time", "end_time", "duration_minutes",
		"category", "subject", "points_earned", "status",
	},
	SheetSubjects: {
		"subject_name", "color", "icon", "active",
	},
	SheetCategories: {
		"category_name", "subject_name", "difficulty", "active",
	},
	SheetUserStats: {
		"date", "tasks_completed", "correct_tasks", "points_earned",
		"pomodoro_sessions", "study_time_minutes",
	},
	SheetAchievements: {
		"achievement_id", "name", "description", "icon", "points",
		"unlocked", "unlock_date",
	},
	SheetSettings: {
		"key", "value", "updated_at",
	},
}
