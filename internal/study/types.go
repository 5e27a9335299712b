package study

import "study-tracker/internal/model"

// --- UseCase Inputs ---

// CreateTaskInput carries one task submission. CorrectlyCompleted is left
// untyped: the form historically sent booleans, numbers and localized
// strings, all normalized at ingestion.
type CreateTaskInput struct {
	TaskID             string
	TaskName           string
	Description        string
	Categories         string
	CorrectlyCompleted any
	StartTime          string
	EndTime            string
	Location           string
	Subject            string
	SessionID          string
}

type CreateSessionInput struct {
	SessionID          string
	StartTime          string
	EndTime            string
	DurationMinutes    int
	TotalTasks         int
	CorrectTasks       int
	AccuracyPercentage int // derived when 0 and TotalTasks > 0
	Notes              string
}

type CreatePomodoroInput struct {
	SessionID       string
	StartTime       string
	EndTime         string
	DurationMinutes int
	Category        string
	Subject         string
	PointsEarned    int
	Status          string
}

// SaveCompleteSessionInput is the composite write: one session plus its
// tasks, persisted together.
type SaveCompleteSessionInput struct {
	Session CreateSessionInput
	Tasks   []CreateTaskInput
}

// --- UseCase Outputs ---

type SessionDetailsOutput struct {
	Session model.StudySession `json:"session"`
	Tasks   []model.StudyTask  `json:"tasks"`
}

type SaveCompleteSessionOutput struct {
	Session    model.StudySession `json:"session"`
	TasksSaved int                `json:"tasks_saved"`
}
