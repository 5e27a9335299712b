package model

// StudyTask is one logged study task. Rows are append-only: tasks are never
// updated after submission.
type StudyTask struct {
	TaskID             string `json:"task_id"`
	TaskName           string `json:"task_name"`
	Description        string `json:"description"`
	Categories         string `json:"categories"`          // comma-joined list
	CorrectlyCompleted string `json:"correctly_completed"` // canonical "Yes"/"No"
	StartTime          string `json:"start_time"`          // as stored, locale-agnostic string
	EndTime            string `json:"end_time"`
	Location           string `json:"location"`
	Subject            string `json:"subject"`
	SessionID          string `json:"session_id"`

	// Timestamp is a legacy submission-time column some older rows carry.
	// Used only as a fallback when StartTime is absent or unparseable.
	Timestamp string `json:"timestamp,omitempty"`
}
