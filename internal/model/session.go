package model

// StudySession groups tasks logged in one sitting. Tasks back-reference it
// via SessionID; the link is lookup-only, a session does not own its rows.
type StudySession struct {
	SessionID          string `json:"session_id"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	DurationMinutes    int    `json:"duration_minutes"`
	TotalTasks         int    `json:"total_tasks"`
	CorrectTasks       int    `json:"correct_tasks"`
	AccuracyPercentage int    `json:"accuracy_percentage"`
	Notes              string `json:"notes"`
}

// PomodoroSession is one completed (or abandoned) pomodoro timer run.
type PomodoroSession struct {
	SessionID       string `json:"session_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
	Subject         string `json:"subject"`
	PointsEarned    int    `json:"points_earned"`
	Status          string `json:"status"`
}
