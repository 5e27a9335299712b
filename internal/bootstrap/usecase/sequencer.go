package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"study-tracker/internal/bootstrap"
	"study-tracker/internal/model"
	"study-tracker/pkg/log"
)

type implSequencer struct {
	src bootstrap.Sources
	l   log.Logger

	mu      sync.Mutex
	loading bool
	state   bootstrap.State
	last    *bootstrap.Result
}

var _ bootstrap.Sequencer = (*implSequencer)(nil)

func New(src bootstrap.Sources, l log.Logger) *implSequencer {
	return &implSequencer{
		src:   src,
		l:     l,
		state: bootstrap.StateNotStarted,
	}
}

func (s *implSequencer) State() bootstrap.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *implSequencer) Last() *bootstrap.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Run executes config → subjects → categories → user-data → interface in
// order. The config and interface steps abort the sequence on failure; the
// middle steps degrade to empty defaults. Re-entrant starts are rejected.
func (s *implSequencer) Run(ctx context.Context) (*bootstrap.Result, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, bootstrap.ErrAlreadyLoading
	}
	s.loading = true
	s.state = bootstrap.StateLoading
	s.mu.Unlock()

	result := s.run(ctx)

	s.mu.Lock()
	s.loading = false
	s.state = result.State
	s.last = result
	s.mu.Unlock()
	return result, nil
}

func (s *implSequencer) run(ctx context.Context) *bootstrap.Result {
	data := &bootstrap.Data{}
	steps := make([]bootstrap.StepResult, 0, len(bootstrap.StepOrder))
	settled := 0
	total := len(bootstrap.StepOrder)

	fail := func(step string, err error) *bootstrap.Result {
		s.l.Errorf(ctx, "bootstrap: step %s fatal: %v", step, err)
		steps = append(steps, bootstrap.StepResult{
			Name:   step,
			Status: bootstrap.StepFailedFatal,
			Error:  err.Error(),
		})
		return &bootstrap.Result{
			State:    bootstrap.StateFailed,
			Progress: settled * 100 / total,
			Steps:    steps,
			Error:    err.Error(),
		}
	}
	settle := func(step string, err error) {
		settled++
		if err != nil {
			s.l.Warnf(ctx, "bootstrap: step %s degraded to defaults: %v", step, err)
			steps = append(steps, bootstrap.StepResult{
				Name:   step,
				Status: bootstrap.StepFailedSoft,
				Error:  err.Error(),
			})
			return
		}
		steps = append(steps, bootstrap.StepResult{Name: step, Status: bootstrap.StepCompleted})
	}

	// Step 1: config. Fatal, nothing downstream can run without it.
	settings, err := s.src.Settings(ctx)
	if err != nil {
		return fail(bootstrap.StepConfig, err)
	}
	data.Settings = settings
	settle(bootstrap.StepConfig, nil)

	// Step 2: subjects.
	subjects, err := s.src.Subjects(ctx)
	if err != nil {
		subjects = []model.Subject{}
	}
	data.Subjects = subjects
	settle(bootstrap.StepSubjects, err)

	// Step 3: categories.
	categories, err := s.src.Categories(ctx)
	if err != nil {
		categories = []model.Category{}
	}
	data.Categories = categories
	settle(bootstrap.StepCategories, err)

	// Step 4: user-data. Tasks and achievements fetch concurrently and each
	// tolerates the other's failure; the join waits for both to settle.
	var (
		tasks           []model.StudyTask
		achievements    []model.Achievement
		tasksErr        error
		achievementsErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, tasksErr = s.src.Tasks(gctx)
		return nil
	})
	g.Go(func() error {
		achievements, achievementsErr = s.src.Achievements(gctx)
		return nil
	})
	_ = g.Wait()
	if tasksErr != nil {
		tasks = []model.StudyTask{}
	}
	if achievementsErr != nil {
		achievements = []model.Achievement{}
	}
	data.Tasks = tasks
	data.Achievements = achievements
	userDataErr := tasksErr
	if userDataErr == nil {
		userDataErr = achievementsErr
	}
	settle(bootstrap.StepUserData, userDataErr)

	// Step 5: interface. Publishing the assembled payload is fatal when it
	// cannot complete.
	if err := s.publish(ctx, data); err != nil {
		return fail(bootstrap.StepInterface, err)
	}
	settle(bootstrap.StepInterface, nil)

	return &bootstrap.Result{
		State:    bootstrap.StateReady,
		Progress: settled * 100 / total,
		Steps:    steps,
		Data:     data,
	}
}

// publish finalizes the payload for consumers. Defaults are filled so READY
// always carries a complete, non-nil structure.
func (s *implSequencer) publish(ctx context.Context, data *bootstrap.Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if data.Settings == nil {
		data.Settings = map[string]string{}
	}
	return nil
}
