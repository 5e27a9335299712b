package bootstrap

import (
	"context"

	"study-tracker/internal/model"
)

// Sources supplies the remote fetches the sequence is built from. Each
// method maps onto one step (Tasks and Achievements together form the
// user-data step).
type Sources interface {
	Settings(ctx context.Context) (map[string]string, error)
	Subjects(ctx context.Context) ([]model.Subject, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Tasks(ctx context.Context) ([]model.StudyTask, error)
	Achievements(ctx context.Context) ([]model.Achievement, error)
}

// Sequencer runs the five-step load. Run is rejected while another run is
// in flight; Last returns the most recent outcome.
type Sequencer interface {
	Run(ctx context.Context) (*Result, error)
	State() State
	Last() *Result
}
