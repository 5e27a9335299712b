package model

// UserStat is one day's accumulated counters, upserted by date.
type UserStat struct {
	Date             string `json:"date"` // YYYY-MM-DD
	TasksCompleted   int    `json:"tasks_completed"`
	CorrectTasks     int    `json:"correct_tasks"`
	PointsEarned     int    `json:"points_earned"`
	PomodoroSessions int    `json:"pomodoro_sessions"`
	StudyTimeMinutes int    `json:"study_time_minutes"`
}

// Achievement is an unlockable badge.
type Achievement struct {
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Points        int    `json:"points"`
	Unlocked      bool   `json:"unlocked"`
	UnlockDate    string `json:"unlock_date"`
}

// Setting is one key/value pair from the Settings sheet.
type Setting struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}
