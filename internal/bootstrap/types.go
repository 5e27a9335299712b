package bootstrap

import "study-tracker/internal/model"

// State is the overall sequence state.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateLoading    State = "LOADING"
	StateReady      State = "READY"
	StateFailed     State = "FAILED"
)

// StepStatus is the terminal status of one step.
type StepStatus string

const (
	StepPending     StepStatus = "PENDING"
	StepRunning     StepStatus = "RUNNING"
	StepCompleted   StepStatus = "COMPLETED"
	StepFailedSoft  StepStatus = "FAILED_SOFT"
	StepFailedFatal StepStatus = "FAILED_FATAL"
)

// Step names, in execution order.
const (
	StepConfig     = "config"
	StepSubjects   = "subjects"
	StepCategories = "categories"
	StepUserData   = "user-data"
	StepInterface  = "interface"
)

// StepOrder is the fixed sequence. Steps config and interface are fatal on
// failure; the middle three soft-fail to empty defaults.
var StepOrder = []string{StepConfig, StepSubjects, StepCategories, StepUserData, StepInterface}

// StepResult records how one step settled.
type StepResult struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Data is the loaded payload published for dependent consumers once the
// sequence reaches READY.
type Data struct {
	Settings     map[string]string   `json:"settings"`
	Subjects     []model.Subject     `json:"subjects"`
	Categories   []model.Category    `json:"categories"`
	Tasks        []model.StudyTask   `json:"tasks"`
	Achievements []model.Achievement `json:"achievements"`
}

// Result is one full sequence outcome. Data is nil when the sequence failed.
type Result struct {
	State    State        `json:"state"`
	Progress int          `json:"progress"` // settled steps / total * 100
	Steps    []StepResult `json:"steps"`
	Data     *Data        `json:"data,omitempty"`
	Error    string       `json:"error,omitempty"`
}
