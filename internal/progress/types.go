package progress

// UpdateAchievementInput upserts one achievement row by ID.
type UpdateAchievementInput struct {
	AchievementID string
	Name          string
	Description   string
	Icon          string
	Points        int
	Unlocked      bool
	UnlockDate    string
}

// AddUserStatInput carries increments for one day's counters. Date defaults
// to today when empty.
type AddUserStatInput struct {
	Date             string
	TasksCompleted   int
	CorrectTasks     int
	PointsEarned     int
	PomodoroSessions int
	StudyTimeMinutes int
}
