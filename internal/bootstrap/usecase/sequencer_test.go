package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"study-tracker/internal/bootstrap"
	"study-tracker/internal/bootstrap/usecase"
	"study-tracker/internal/model"
	"study-tracker/pkg/log"
)

type fakeSources struct {
	settings     map[string]string
	settingsErr  error
	subjects     []model.Subject
	subjectsErr  error
	categories   []model.Category
	tasks        []model.StudyTask
	tasksErr     error
	achievements []model.Achievement

	tasksStarted chan struct{}
	tasksRelease chan struct{}
}

func (f *fakeSources) Settings(ctx context.Context) (map[string]string, error) {
	return f.settings, f.settingsErr
}

func (f *fakeSources) Subjects(ctx context.Context) ([]model.Subject, error) {
	return f.subjects, f.subjectsErr
}

func (f *fakeSources) Categories(ctx context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeSources) Tasks(ctx context.Context) ([]model.StudyTask, error) {
	if f.tasksStarted != nil {
		close(f.tasksStarted)
	}
	if f.tasksRelease != nil {
		<-f.tasksRelease
	}
	return f.tasks, f.tasksErr
}

func (f *fakeSources) Achievements(ctx context.Context) ([]model.Achievement, error) {
	return f.achievements, nil
}

func stepStatus(t *testing.T, result *bootstrap.Result, name string) bootstrap.StepStatus {
	t.Helper()
	for _, step := range result.Steps {
		if step.Name == name {
			return step.Status
		}
	}
	t.Fatalf("step %s missing from %+v", name, result.Steps)
	return ""
}

func TestSequencer(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy Path Reaches Ready", func(t *testing.T) {
		seq := usecase.New(&fakeSources{
			settings: map[string]string{"exam_date": "2024-05-07"},
			subjects: []model.Subject{{SubjectName: "Math", Active: true}},
			tasks:    []model.StudyTask{{TaskID: "t1", TaskName: "drill"}},
		}, log.NewNop())

		result, err := seq.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.State != bootstrap.StateReady {
			t.Errorf("expected READY, got %s", result.State)
		}
		if result.Progress != 100 {
			t.Errorf("expected progress 100, got %d", result.Progress)
		}
		if result.Data == nil || len(result.Data.Tasks) != 1 {
			t.Errorf("expected published data, got %+v", result.Data)
		}
		if seq.State() != bootstrap.StateReady {
			t.Errorf("sequencer state must track the run, got %s", seq.State())
		}
	})

	t.Run("Config Failure Is Fatal", func(t *testing.T) {
		seq := usecase.New(&fakeSources{settingsErr: errors.New("no spreadsheet")}, log.NewNop())
		result, err := seq.Run(ctx)
		if err != nil {
			t.Fatalf("fatal runs still return a result: %v", err)
		}
		if result.State != bootstrap.StateFailed {
			t.Errorf("expected FAILED, got %s", result.State)
		}
		if got := stepStatus(t, result, bootstrap.StepConfig); got != bootstrap.StepFailedFatal {
			t.Errorf("expected FAILED_FATAL config, got %s", got)
		}
		if len(result.Steps) != 1 {
			t.Errorf("remaining steps must not run, got %+v", result.Steps)
		}
		if result.Data != nil {
			t.Errorf("failed runs publish no data")
		}
	})

	t.Run("Subjects Failure Degrades To Empty", func(t *testing.T) {
		seq := usecase.New(&fakeSources{
			settings:    map[string]string{},
			subjectsErr: errors.New("fetch rejected"),
			tasks:       []model.StudyTask{{TaskID: "t1", TaskName: "drill"}},
		}, log.NewNop())

		result, err := seq.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.State != bootstrap.StateReady {
			t.Errorf("soft failure must still reach READY, got %s", result.State)
		}
		if got := stepStatus(t, result, bootstrap.StepSubjects); got != bootstrap.StepFailedSoft {
			t.Errorf("expected FAILED_SOFT subjects, got %s", got)
		}
		if result.Data.Subjects == nil || len(result.Data.Subjects) != 0 {
			t.Errorf("subjects must default to empty, got %v", result.Data.Subjects)
		}
		if len(result.Data.Tasks) != 1 {
			t.Errorf("later steps must still load, got %v", result.Data.Tasks)
		}
	})

	t.Run("User Data Tolerates One Side Failing", func(t *testing.T) {
		seq := usecase.New(&fakeSources{
			settings:     map[string]string{},
			tasksErr:     errors.New("tasks fetch rejected"),
			achievements: []model.Achievement{{AchievementID: "a1", Name: "First"}},
		}, log.NewNop())

		result, err := seq.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.State != bootstrap.StateReady {
			t.Errorf("expected READY, got %s", result.State)
		}
		if got := stepStatus(t, result, bootstrap.StepUserData); got != bootstrap.StepFailedSoft {
			t.Errorf("expected FAILED_SOFT user-data, got %s", got)
		}
		if len(result.Data.Tasks) != 0 {
			t.Errorf("failed side defaults to empty, got %v", result.Data.Tasks)
		}
		if len(result.Data.Achievements) != 1 {
			t.Errorf("surviving side must keep its data, got %v", result.Data.Achievements)
		}
	})

	t.Run("Re-entrant Start Rejected", func(t *testing.T) {
		src := &fakeSources{
			settings:     map[string]string{},
			tasksStarted: make(chan struct{}),
			tasksRelease: make(chan struct{}),
		}
		seq := usecase.New(src, log.NewNop())

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := seq.Run(ctx); err != nil {
				t.Errorf("first run must not be rejected: %v", err)
			}
		}()

		<-src.tasksStarted
		if _, err := seq.Run(ctx); !errors.Is(err, bootstrap.ErrAlreadyLoading) {
			t.Errorf("expected ErrAlreadyLoading, got %v", err)
		}
		close(src.tasksRelease)
		wg.Wait()

		// A settled run can be started again.
		src.tasksRelease = nil
		src.tasksStarted = nil
		if _, err := seq.Run(ctx); err != nil {
			t.Errorf("restart after settle must work: %v", err)
		}
	})
}
